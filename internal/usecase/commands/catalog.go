package commands

import (
	"context"

	"tastebuds/internal/domain/session"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra"
	"tastebuds/internal/infra/repository"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/pkg/ptr"
	"tastebuds/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrVenueNotFound  = errs.New("venue not found")
	ErrClassNotFound  = errs.New("class not found")
	ErrRecipeNotFound = errs.New("recipe not found")
	ErrCatalogInUse   = errs.New("catalog record is referenced by other data")
)

type CatalogRepository interface {
	CreateVenue(ctx context.Context, v *repository.Venue) error
	FindVenue(ctx context.Context, id uuid.UUID) (*repository.Venue, error)
	UpdateVenue(ctx context.Context, v *repository.Venue) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
	CreateClass(ctx context.Context, c *repository.Class) error
	FindClass(ctx context.Context, id uuid.UUID) (*repository.Class, error)
	UpdateClass(ctx context.Context, c *repository.Class) error
	DeleteClass(ctx context.Context, id uuid.UUID) error
	CreateRecipe(ctx context.Context, r *repository.Recipe) error
	FindRecipe(ctx context.Context, id uuid.UUID) (*repository.Recipe, error)
	UpdateRecipe(ctx context.Context, r *repository.Recipe) error
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	CreateGalleryImage(ctx context.Context, img *repository.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}

type SessionWriteRepository interface {
	Create(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Update(ctx context.Context, s *session.Session) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status session.Status) error
}

type CatalogCommands interface {
	CreateVenue(ctx context.Context, req reqdto.VenueRequest) (*queries.VenueView, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req reqdto.VenueRequest) (*queries.VenueView, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error

	CreateClass(ctx context.Context, req reqdto.ClassRequest) (*queries.ClassView, error)
	UpdateClass(ctx context.Context, id uuid.UUID, req reqdto.ClassRequest) (*queries.ClassView, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, req reqdto.RecipeRequest) (*queries.RecipeView, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req reqdto.RecipeRequest) (*queries.RecipeView, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error

	CreateGalleryImage(ctx context.Context, req reqdto.GalleryImageRequest) (*queries.GalleryImageView, error)
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error

	CreateSession(ctx context.Context, req reqdto.CreateSessionRequest) (*queries.SessionView, error)
	UpdateSession(ctx context.Context, id uuid.UUID, req reqdto.UpdateSessionRequest) (*queries.SessionView, error)
	UpdateSessionStatus(ctx context.Context, id uuid.UUID, req reqdto.SessionStatusRequest) (*queries.SessionView, error)
}

type catalogCommandsImpl struct {
	catalogRepo CatalogRepository
	sessionRepo SessionWriteRepository
}

func NewCatalogCommands(catalogRepo CatalogRepository, sessionRepo SessionWriteRepository) CatalogCommands {
	return &catalogCommandsImpl{catalogRepo: catalogRepo, sessionRepo: sessionRepo}
}

func (c *catalogCommandsImpl) CreateVenue(ctx context.Context, req reqdto.VenueRequest) (*queries.VenueView, error) {
	v := &repository.Venue{ID: uuid.New(), Name: req.Name, Address: req.Address}
	if err := c.catalogRepo.CreateVenue(ctx, v); err != nil {
		return nil, err
	}
	return venueView(v)
}

func (c *catalogCommandsImpl) UpdateVenue(ctx context.Context, id uuid.UUID, req reqdto.VenueRequest) (*queries.VenueView, error) {
	v := &repository.Venue{ID: id, Name: req.Name, Address: req.Address}
	if err := c.catalogRepo.UpdateVenue(ctx, v); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venueView(v)
}

func (c *catalogCommandsImpl) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if err := c.catalogRepo.DeleteVenue(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCatalogInUse
		}
		return err
	}
	return nil
}

func (c *catalogCommandsImpl) CreateClass(ctx context.Context, req reqdto.ClassRequest) (*queries.ClassView, error) {
	if !session.ClassType(req.Type).IsValid() {
		return nil, session.ErrInvalidClassType
	}
	if _, err := c.catalogRepo.FindVenue(ctx, req.VenueID); err != nil {
		return nil, ErrVenueNotFound
	}

	cl := &repository.Class{ID: uuid.New()}
	if err := copier.Copy(cl, &req); err != nil {
		return nil, errs.Wrap(err, "failed to map class request")
	}
	if err := c.catalogRepo.CreateClass(ctx, cl); err != nil {
		return nil, err
	}
	return classView(cl)
}

func (c *catalogCommandsImpl) UpdateClass(ctx context.Context, id uuid.UUID, req reqdto.ClassRequest) (*queries.ClassView, error) {
	if !session.ClassType(req.Type).IsValid() {
		return nil, session.ErrInvalidClassType
	}

	cl := &repository.Class{ID: id}
	if err := copier.Copy(cl, &req); err != nil {
		return nil, errs.Wrap(err, "failed to map class request")
	}
	if err := c.catalogRepo.UpdateClass(ctx, cl); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return classView(cl)
}

func (c *catalogCommandsImpl) DeleteClass(ctx context.Context, id uuid.UUID) error {
	if err := c.catalogRepo.DeleteClass(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClassNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCatalogInUse
		}
		return err
	}
	return nil
}

func (c *catalogCommandsImpl) CreateRecipe(ctx context.Context, req reqdto.RecipeRequest) (*queries.RecipeView, error) {
	rec := &repository.Recipe{ID: uuid.New(), Name: req.Name, Description: req.Description, PhotoURL: req.PhotoURL}
	if err := c.catalogRepo.CreateRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return recipeView(rec)
}

func (c *catalogCommandsImpl) UpdateRecipe(ctx context.Context, id uuid.UUID, req reqdto.RecipeRequest) (*queries.RecipeView, error) {
	rec := &repository.Recipe{ID: id, Name: req.Name, Description: req.Description, PhotoURL: req.PhotoURL}
	if err := c.catalogRepo.UpdateRecipe(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipeView(rec)
}

func (c *catalogCommandsImpl) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if err := c.catalogRepo.DeleteRecipe(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRecipeNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCatalogInUse
		}
		return err
	}
	return nil
}

func (c *catalogCommandsImpl) CreateGalleryImage(ctx context.Context, req reqdto.GalleryImageRequest) (*queries.GalleryImageView, error) {
	img := &repository.GalleryImage{
		ID:          uuid.New(),
		ImageURL:    req.ImageURL,
		Description: req.Description,
		AltText:     req.AltText,
		SortOrder:   req.SortOrder,
	}
	if err := c.catalogRepo.CreateGalleryImage(ctx, img); err != nil {
		return nil, err
	}

	var view queries.GalleryImageView
	if err := copier.Copy(&view, img); err != nil {
		return nil, errs.Wrap(err, "failed to map gallery image")
	}
	return &view, nil
}

func (c *catalogCommandsImpl) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	return c.catalogRepo.DeleteGalleryImage(ctx, id)
}

// CreateSession schedules a dated occurrence of a class, copying the class,
// venue and recipe display names into the session so later catalog edits do
// not rewrite history.
func (c *catalogCommandsImpl) CreateSession(ctx context.Context, req reqdto.CreateSessionRequest) (*queries.SessionView, error) {
	cl, err := c.catalogRepo.FindClass(ctx, req.ClassID)
	if err != nil {
		return nil, ErrClassNotFound
	}
	v, err := c.catalogRepo.FindVenue(ctx, cl.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	var recipeName *string
	if req.RecipeID != nil {
		rec, err := c.catalogRepo.FindRecipe(ctx, *req.RecipeID)
		if err != nil {
			return nil, ErrRecipeNotFound
		}
		recipeName = ptr.To(rec.Name)
	}

	s, err := session.NewSession(session.NewSessionParams{
		ClassID:    cl.ID,
		ClassName:  cl.Name,
		ClassType:  session.ClassType(cl.Type),
		Date:       req.Date,
		VenueID:    v.ID,
		VenueName:  v.Name,
		RecipeID:   req.RecipeID,
		RecipeName: recipeName,
		Instructor: cl.Instructor,
		StartTime:  cl.StartTime,
		EndTime:    cl.EndTime,
		AgeMin:     cl.AgeMin,
		AgeMax:     cl.AgeMax,
		PricePence: cl.PricePence,
		SpotsTotal: cl.MaxSize,
	})
	if err != nil {
		return nil, err
	}

	if err := c.sessionRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return queries.NewSessionView(s), nil
}

// UpdateSession reschedules an existing occurrence. The class and venue
// bindings are fixed at creation; date, recipe, instructor, times, price and
// capacity may change. Spots already taken by bookings are preserved, so the
// total cannot shrink below the booked count.
func (c *catalogCommandsImpl) UpdateSession(ctx context.Context, id uuid.UUID, req reqdto.UpdateSessionRequest) (*queries.SessionView, error) {
	existing, err := c.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var recipeName *string
	if req.RecipeID != nil {
		rec, err := c.catalogRepo.FindRecipe(ctx, *req.RecipeID)
		if err != nil {
			return nil, ErrRecipeNotFound
		}
		recipeName = ptr.To(rec.Name)
	}

	booked := existing.SpotsTotal() - existing.SpotsAvailable()
	available := req.SpotsTotal - booked
	if available < 0 {
		return nil, session.ErrInvalidCapacity
	}

	// A capacity increase reopens a sold-out session, same as a released spot.
	status := existing.Status()
	if status == session.StatusFull && available > 0 {
		status = session.StatusOpen
	}

	s, err := session.ReconstructSession(id, session.NewSessionParams{
		ClassID:    existing.ClassID(),
		ClassName:  existing.ClassName(),
		ClassType:  existing.ClassType(),
		Date:       req.Date,
		VenueID:    existing.VenueID(),
		VenueName:  existing.VenueName(),
		RecipeID:   req.RecipeID,
		RecipeName: recipeName,
		Instructor: req.Instructor,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		AgeMin:     existing.AgeMin(),
		AgeMax:     existing.AgeMax(),
		PricePence: req.PricePence,
		SpotsTotal: req.SpotsTotal,
	}, available, status, existing.CreatedAt())
	if err != nil {
		return nil, err
	}

	if err := c.sessionRepo.Update(ctx, s); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return queries.NewSessionView(s), nil
}

func (c *catalogCommandsImpl) UpdateSessionStatus(ctx context.Context, id uuid.UUID, req reqdto.SessionStatusRequest) (*queries.SessionView, error) {
	status := session.Status(req.Status)
	if !status.IsValid() {
		return nil, session.ErrInvalidStatus
	}

	if err := c.sessionRepo.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	s, err := c.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewSessionView(s), nil
}

func venueView(v *repository.Venue) (*queries.VenueView, error) {
	var view queries.VenueView
	if err := copier.Copy(&view, v); err != nil {
		return nil, errs.Wrap(err, "failed to map venue")
	}
	return &view, nil
}

func classView(cl *repository.Class) (*queries.ClassView, error) {
	var view queries.ClassView
	if err := copier.Copy(&view, cl); err != nil {
		return nil, errs.Wrap(err, "failed to map class")
	}
	return &view, nil
}

func recipeView(rec *repository.Recipe) (*queries.RecipeView, error) {
	var view queries.RecipeView
	if err := copier.Copy(&view, rec); err != nil {
		return nil, errs.Wrap(err, "failed to map recipe")
	}
	return &view, nil
}
