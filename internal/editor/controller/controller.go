package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
)

// Controller binds the view data of the page its route renders.
type Controller interface {
	Kind() entity.ControllerKind
	Bind(ctx context.Context, params entity.Params) (entity.ViewData, error)
}

// Set holds exactly one controller per kind.
type Set struct {
	ArticleList   Controller
	ArticleDetail Controller
	Dictionary    Controller
}

// NewSet returns the default controllers.
func NewSet() Set {
	return Set{
		ArticleList:   ArticleList{},
		ArticleDetail: ArticleDetail{},
		Dictionary:    Dictionary{},
	}
}

// For returns the controller registered for kind.
func (s Set) For(kind entity.ControllerKind) (Controller, error) {
	var c Controller
	switch kind {
	case entity.ControllerArticleList:
		c = s.ArticleList
	case entity.ControllerArticleDetail:
		c = s.ArticleDetail
	case entity.ControllerDictionary:
		c = s.Dictionary
	case entity.ControllerUnknown:
	}

	if c == nil {
		return nil, pkgerror.NewServer(fmt.Errorf("controller: no controller for %s", kind))
	}
	return c, nil
}

// ArticleList binds the article list page.
type ArticleList struct{}

func (ArticleList) Kind() entity.ControllerKind { return entity.ControllerArticleList }

func (ArticleList) Bind(_ context.Context, _ entity.Params) (entity.ViewData, error) {
	return entity.ViewData{
		Title:   "Articles",
		Section: string(entity.SectionArticle),
		Values:  map[string]any{},
	}, nil
}

// ArticleDetail binds a single article page. The article id is passed
// through as captured; what counts as a well-formed id is decided here,
// not by the route.
type ArticleDetail struct{}

func (ArticleDetail) Kind() entity.ControllerKind { return entity.ControllerArticleDetail }

func (ArticleDetail) Bind(_ context.Context, params entity.Params) (entity.ViewData, error) {
	id := params.ByName(entity.ParamArticleID)
	if id == "" {
		return entity.ViewData{}, pkgerror.NewInvalidInput(errors.New("articleId is required"))
	}

	return entity.ViewData{
		Title:   "Article " + id,
		Section: string(entity.SectionArticle),
		Values: map[string]any{
			entity.ParamArticleID: id,
		},
	}, nil
}

// Dictionary binds the dictionary page.
type Dictionary struct{}

func (Dictionary) Kind() entity.ControllerKind { return entity.ControllerDictionary }

func (Dictionary) Bind(_ context.Context, _ entity.Params) (entity.ViewData, error) {
	return entity.ViewData{
		Title:   "Dictionary",
		Section: string(entity.SectionDictionary),
		Values:  map[string]any{},
	}, nil
}
