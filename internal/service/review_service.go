package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"titanpc-store/internal/model"
	"titanpc-store/internal/repository"
)

type ReviewRepository interface {
	Insert(ctx context.Context, r *model.Review) error
	FindByID(ctx context.Context, id string) (*model.Review, error)
	FindByProductID(ctx context.Context, productID string) ([]*model.Review, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*model.Review, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotVerifiedBuyer = errors.New("solo pueden reseñar compradores con pedido entregado")
	ErrAlreadyReviewed  = errors.New("ya has publicado una reseña de este producto")
	ErrNotReviewOwner   = errors.New("la reseña pertenece a otro usuario")
	ErrInvalidRating    = errors.New("la valoración debe estar entre 1 y 5")
)

// ReviewService limita el CRUD de reseñas a compradores verificados: el
// usuario debe tener una orden entregada que contenga el producto.
type ReviewService struct {
	reviews ReviewRepository
	orders  OrderRepository
}

func NewReviewService(reviews ReviewRepository, orders OrderRepository) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders}
}

func (s *ReviewService) GetByProduct(ctx context.Context, productID string) ([]*model.Review, error) {
	return s.reviews.FindByProductID(ctx, productID)
}

// isVerifiedBuyer comprueba que el email del usuario tenga alguna orden
// entregada con el producto.
func (s *ReviewService) isVerifiedBuyer(ctx context.Context, email, productID string) (bool, error) {
	orders, err := s.orders.FindByCustomerEmail(ctx, email)
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		if o.Estado != model.StatusEntregado {
			continue
		}
		for _, item := range o.Productos {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *ReviewService) Create(ctx context.Context, user *AuthUser, productID string, rating int, title, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	verified, err := s.isVerifiedBuyer(ctx, user.Email, productID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrNotVerifiedBuyer
	}

	if _, err := s.reviews.FindByUserAndProduct(ctx, user.ID, productID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, err
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Title:     title,
		Comment:   comment,
		Verified:  true,
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, user *AuthUser, reviewID string, rating int, title, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID {
		return nil, ErrNotReviewOwner
	}

	review.Rating = rating
	review.Title = title
	review.Comment = comment
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, user *AuthUser, reviewID string) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != user.ID && !containsPerm(user.Permissions, "admin") {
		return ErrNotReviewOwner
	}
	return s.reviews.Delete(ctx, reviewID)
}

func containsPerm(perms []string, p string) bool {
	for _, v := range perms {
		if v == p {
			return true
		}
	}
	return false
}
