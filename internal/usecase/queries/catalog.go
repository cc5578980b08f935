package queries

import (
	"context"

	"tastebuds/internal/domain/session"
	"tastebuds/internal/infra/repository"
	"tastebuds/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	ListUpcoming(ctx context.Context) ([]*session.Session, error)
	ListAll(ctx context.Context) ([]*session.Session, error)
}

type CatalogReadStore interface {
	FindVenue(ctx context.Context, id uuid.UUID) (*repository.Venue, error)
	ListVenues(ctx context.Context) ([]repository.Venue, error)
	FindClass(ctx context.Context, id uuid.UUID) (*repository.Class, error)
	ListClasses(ctx context.Context) ([]repository.Class, error)
	FindRecipe(ctx context.Context, id uuid.UUID) (*repository.Recipe, error)
	ListRecipes(ctx context.Context) ([]repository.Recipe, error)
	ListGalleryImages(ctx context.Context) ([]repository.GalleryImage, error)
}

type CatalogQueries interface {
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ListUpcomingSessions(ctx context.Context) ([]*SessionView, error)
	ListAllSessions(ctx context.Context) ([]*SessionView, error)
	ListVenues(ctx context.Context) ([]VenueView, error)
	ListClasses(ctx context.Context) ([]ClassView, error)
	ListRecipes(ctx context.Context) ([]RecipeView, error)
	ListGallery(ctx context.Context) ([]GalleryImageView, error)
}

type catalogQueriesImpl struct {
	sessions SessionReadStore
	catalog  CatalogReadStore
}

func NewCatalogQueries(sessions SessionReadStore, catalog CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{sessions: sessions, catalog: catalog}
}

func (q *catalogQueriesImpl) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	s, err := q.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSessionView(s), nil
}

func (q *catalogQueriesImpl) ListUpcomingSessions(ctx context.Context) ([]*SessionView, error) {
	sessions, err := q.sessions.ListUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	return sessionViews(sessions), nil
}

func (q *catalogQueriesImpl) ListAllSessions(ctx context.Context) ([]*SessionView, error) {
	sessions, err := q.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return sessionViews(sessions), nil
}

func sessionViews(sessions []*session.Session) []*SessionView {
	views := make([]*SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, NewSessionView(s))
	}
	return views
}

func (q *catalogQueriesImpl) ListVenues(ctx context.Context) ([]VenueView, error) {
	venues, err := q.catalog.ListVenues(ctx)
	if err != nil {
		return nil, err
	}

	var views []VenueView
	if err := copier.Copy(&views, &venues); err != nil {
		return nil, errs.Wrap(err, "failed to map venues")
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListClasses(ctx context.Context) ([]ClassView, error) {
	classes, err := q.catalog.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	var views []ClassView
	if err := copier.Copy(&views, &classes); err != nil {
		return nil, errs.Wrap(err, "failed to map classes")
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListRecipes(ctx context.Context) ([]RecipeView, error) {
	recipes, err := q.catalog.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	var views []RecipeView
	if err := copier.Copy(&views, &recipes); err != nil {
		return nil, errs.Wrap(err, "failed to map recipes")
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListGallery(ctx context.Context) ([]GalleryImageView, error) {
	images, err := q.catalog.ListGalleryImages(ctx)
	if err != nil {
		return nil, err
	}

	var views []GalleryImageView
	if err := copier.Copy(&views, &images); err != nil {
		return nil, errs.Wrap(err, "failed to map gallery images")
	}
	return views, nil
}
