package entity

// ControllerKind names one controller of the closed controller set.
type ControllerKind int

const (
	ControllerUnknown ControllerKind = iota
	ControllerArticleList
	ControllerArticleDetail
	ControllerDictionary
)

func (k ControllerKind) String() string {
	switch k {
	case ControllerArticleList:
		return "ArticleListController"
	case ControllerArticleDetail:
		return "ArticleDetailController"
	case ControllerDictionary:
		return "DictionaryController"
	default:
		return "UnknownController"
	}
}

// Valid reports whether k is one of the known controllers.
func (k ControllerKind) Valid() bool {
	switch k {
	case ControllerArticleList, ControllerArticleDetail, ControllerDictionary:
		return true
	default:
		return false
	}
}

// Section is the navigation section a page belongs to.
type Section string

const (
	SectionArticle    Section = "article"
	SectionDictionary Section = "dictionary"
)

// ParamArticleID is the parameter captured by the article detail route.
const ParamArticleID = "articleId"
