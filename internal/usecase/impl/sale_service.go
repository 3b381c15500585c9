package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecowave/internal/delivery/context"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// saleService implements the SaleUsecase interface.
type saleService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// SaleServiceParams holds dependencies for saleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MarkSold records a completed sale. The preconditions are checked in order
// before any write: the listing must exist, the caller must own it, and it
// must still be active. The sold transition and the ledger credits then run
// in a single transaction, with the conditional update arbitrating racing
// attempts that passed the read-time checks together.
func (srv *saleService) MarkSold(ctx context.Context, input *usecase.MarkSoldInput) (*usecase.MarkSoldOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for sale")
	}

	if product.SellerEmail != input.SellerEmail {
		srv.log(ctx).Warn("Rejected sale by non-owner",
			slog.String("productID", input.ProductID),
			slog.String("actor", input.SellerEmail))

		return nil, domainerrors.ErrForbidden
	}

	if product.IsSold() {
		return nil, domainerrors.ErrAlreadySold
	}

	var buyerCredited bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sold, markErr := repoFactory.ProductRepo().MarkSold(ctx, input.ProductID, input.BuyerEmail)
		if markErr != nil {
			return errors.Wrap(markErr, "failed to mark product sold")
		}
		if !sold {
			// Another request won the transition between our read and this write.
			return domainerrors.ErrAlreadySold
		}

		userRepo := repoFactory.UserRepo()

		sellerCredited, creditErr := userRepo.IncrementImpact(ctx, product.SellerEmail, product.EcoImpact, true)
		if creditErr != nil {
			return errors.Wrap(creditErr, "failed to credit seller ledger")
		}
		if !sellerCredited {
			srv.log(ctx).Warn("Seller has no ledger to credit", slog.String("sellerEmail", product.SellerEmail))
		}

		if input.BuyerEmail != "" {
			buyerCredited, creditErr = userRepo.IncrementImpact(ctx, input.BuyerEmail, product.EcoImpact, false)
			if creditErr != nil {
				return errors.Wrap(creditErr, "failed to credit buyer ledger")
			}
			if !buyerCredited {
				// An unknown buyer email skips the credit but never voids the sale.
				srv.log(ctx).Info("Buyer email does not match a known user", slog.String("buyerEmail", input.BuyerEmail))
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadySold) {
			return nil, domainerrors.ErrAlreadySold
		}
		srv.log(ctx).Error("Failed to execute sale transaction", slog.String("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sale transaction")
	}

	soldProduct, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product after sale")
	}

	srv.log(ctx).Info("Recorded sale",
		slog.String("productID", input.ProductID),
		slog.String("sellerEmail", product.SellerEmail),
		slog.Bool("buyerCredited", buyerCredited))

	return &usecase.MarkSoldOutput{Product: soldProduct, BuyerCredited: buyerCredited}, nil
}
