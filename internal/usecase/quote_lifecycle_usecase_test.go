package usecase

import (
	"context"
	"errors"
	"testing"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
	mock_interfaces "machine_shop_suite/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testQuoteID = "q_0123456789abcdef01234567"

func validParams() entities.PrintParams {
	return entities.PrintParams{
		Material:      "pla",
		Quality:       "standard",
		Printer:       "prusa_mk3s",
		Quantity:      1,
		InfillDensity: 20,
	}
}

// knownCatalog wires the config mock to accept the params from validParams().
func knownCatalog(cfg *mock_interfaces.MockIConfigSource) {
	cfg.EXPECT().Material("pla").Return(entities.Material{Name: "PLA"}, true).AnyTimes()
	cfg.EXPECT().PrintQuality("standard").Return(entities.PrintQuality{Name: "Standard"}, true).AnyTimes()
	cfg.EXPECT().Printer("prusa_mk3s").Return(entities.Printer{Name: "Prusa MK3S+", Enabled: true}, true).AnyTimes()
}

func TestQuoteLifecycleUseCase_Create(t *testing.T) {
	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		cfg.EXPECT().Material("unobtanium").Return(entities.Material{}, false)

		params := validParams()
		params.Material = "Unobtanium"
		_, err := uc.Create(context.Background(), params, nil, "INR", 0)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "material" {
			t.Fatalf("expected material field, got %q", verr.Field)
		}
	})

	t.Run("disabled printer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		cfg.EXPECT().Material("pla").Return(entities.Material{}, true)
		cfg.EXPECT().PrintQuality("standard").Return(entities.PrintQuality{}, true)
		cfg.EXPECT().Printer("ender3_v2").Return(entities.Printer{Enabled: false}, true)

		params := validParams()
		params.Printer = "ender3_v2"
		_, err := uc.Create(context.Background(), params, nil, "INR", 0)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "printer" {
			t.Fatalf("expected printer field, got %q", verr.Field)
		}
	})

	t.Run("infill out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		knownCatalog(cfg)

		params := validParams()
		params.InfillDensity = 3
		_, err := uc.Create(context.Background(), params, nil, "INR", 0)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "infillDensity" {
			t.Fatalf("expected infillDensity field, got %q", verr.Field)
		}
	})

	t.Run("success signs and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		repo.EXPECT().NewID().Return(testQuoteID)
		repo.EXPECT().Now().Return(int64(1000))
		signer.EXPECT().Sign(gomock.Any()).Return("sig-1")

		var saved entities.Quote
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q entities.Quote) error {
				saved = q
				return nil
			})

		computed := map[string]any{"total_price": 421.5}
		q, err := uc.Create(context.Background(), validParams(), computed, "INR", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if q.Status != entities.QuoteStatusEstimated {
			t.Fatalf("expected estimated, got %s", q.Status)
		}
		if q.CreatedAtTs != 1000 || q.ExpiresAtTs != 2800 {
			t.Fatalf("unexpected timestamps: created=%d expires=%d", q.CreatedAtTs, q.ExpiresAtTs)
		}
		if q.ConfigVersion != "cfgv1" {
			t.Fatalf("expected cfgv1, got %s", q.ConfigVersion)
		}
		if q.Price == nil || *q.Price != 421.5 {
			t.Fatalf("expected price mirrored from computed, got %v", q.Price)
		}
		if q.Signature != "sig-1" {
			t.Fatalf("expected signature set before save, got %q", q.Signature)
		}
		if saved.Signature != "sig-1" {
			t.Fatalf("persisted record missing signature: %q", saved.Signature)
		}
	})

	t.Run("custom ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		repo.EXPECT().NewID().Return(testQuoteID)
		repo.EXPECT().Now().Return(int64(1000))
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Create(context.Background(), validParams(), nil, "INR", 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ExpiresAtTs != 1060 {
			t.Fatalf("expected expiry 1060, got %d", q.ExpiresAtTs)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		repo.EXPECT().NewID().Return(testQuoteID)
		repo.EXPECT().Now().Return(int64(1000))
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(errors.New("disk full"))

		_, err := uc.Create(context.Background(), validParams(), nil, "INR", 0)
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full error, got %v", err)
		}
	})
}

func TestQuoteLifecycleUseCase_Get(t *testing.T) {
	t.Run("malformed id short-circuits before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		for _, id := range []string{"", "  ", "nope", "q_XYZ", "q_0123456789abcdef0123456", "../../etc/passwd"} {
			_, err := uc.Get(context.Background(), id)
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("id %q: expected ErrQuoteNotFound, got %v", id, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(entities.Quote{}, nil)

		_, err := uc.Get(context.Background(), testQuoteID)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("fresh quote returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 2000}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1500))

		q, err := uc.Get(context.Background(), testQuoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusEstimated {
			t.Fatalf("expected estimated, got %s", q.Status)
		}
	})

	t.Run("lazy expiry persists the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 2000, Signature: "old"}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(2001))
		signer.EXPECT().Sign(gomock.Any()).Return("resigned")

		var saved entities.Quote
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q entities.Quote) error {
				saved = q
				return nil
			})

		q, err := uc.Get(context.Background(), testQuoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusExpired {
			t.Fatalf("expected expired, got %s", q.Status)
		}
		if saved.Status != entities.QuoteStatusExpired || saved.Signature != "resigned" {
			t.Fatalf("expiry was not persisted re-signed: %+v", saved)
		}
	})

	t.Run("locked quote is never demoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusLocked, ExpiresAtTs: 2000}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(9999))

		q, err := uc.Get(context.Background(), testQuoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusLocked {
			t.Fatalf("locked quote was demoted to %s", q.Status)
		}
	})
}

func TestQuoteLifecycleUseCase_Refresh(t *testing.T) {
	t.Run("locked refuses refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusLocked}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)

		_, err := uc.Refresh(context.Background(), testQuoteID, false)
		if !errors.Is(err, ErrQuoteLocked) {
			t.Fatalf("expected ErrQuoteLocked, got %v", err)
		}
	})

	t.Run("params no longer valid moves to recalc_required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		price := 100.0
		stored := entities.Quote{
			QuoteID:     testQuoteID,
			Status:      entities.QuoteStatusEstimated,
			ExpiresAtTs: 2000,
			Params:      entities.PrintParams{Material: "retired", Quality: "standard", Printer: "prusa_mk3s", Quantity: 1, InfillDensity: 20},
			Computed:    map[string]any{"total_price": price},
			Price:       &price,
		}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1500))
		cfg.EXPECT().Material("retired").Return(entities.Material{}, false)
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Refresh(context.Background(), testQuoteID, false)
		if err != nil {
			t.Fatalf("refresh should report the outcome, not fail: %v", err)
		}
		if q.Status != entities.QuoteStatusRecalcRequired {
			t.Fatalf("expected recalc_required, got %s", q.Status)
		}
		if q.Price != nil || q.Computed != nil {
			t.Fatalf("stale pricing must be cleared: price=%v computed=%v", q.Price, q.Computed)
		}
		if q.Error == nil || *q.Error == "" {
			t.Fatal("expected a reason on the record")
		}
		if q.RefreshedAtTs == nil || *q.RefreshedAtTs != 1500 {
			t.Fatalf("expected refreshedAtTs stamped, got %v", q.RefreshedAtTs)
		}
	})

	t.Run("config drift moves to recalc_required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		price := 100.0
		stored := entities.Quote{
			QuoteID:       testQuoteID,
			Status:        entities.QuoteStatusEstimated,
			ExpiresAtTs:   2000,
			ConfigVersion: "cfgv1",
			Params:        validParams(),
			Computed:      map[string]any{"total_price": price},
			Price:         &price,
		}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1500))
		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv2")
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Refresh(context.Background(), testQuoteID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRecalcRequired {
			t.Fatalf("expected recalc_required, got %s", q.Status)
		}
		if q.RequiredConfigVersion == nil || *q.RequiredConfigVersion != "cfgv2" {
			t.Fatalf("expected requiredConfigVersion cfgv2, got %v", q.RequiredConfigVersion)
		}
		if q.Price != nil || q.Computed != nil {
			t.Fatalf("stale pricing must be cleared: price=%v computed=%v", q.Price, q.Computed)
		}
		if q.ExpiresAtTs != 1500+1800 {
			t.Fatalf("expected fresh validity window, got %d", q.ExpiresAtTs)
		}
	})

	t.Run("expired quote revives with a fresh window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{
			QuoteID:       testQuoteID,
			Status:        entities.QuoteStatusExpired,
			ExpiresAtTs:   1000,
			ConfigVersion: "cfgv1",
			Params:        validParams(),
		}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(5000))
		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Refresh(context.Background(), testQuoteID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusEstimated {
			t.Fatalf("expected estimated, got %s", q.Status)
		}
		if q.ExpiresAtTs != 5000+1800 {
			t.Fatalf("expected renewed expiry, got %d", q.ExpiresAtTs)
		}
	})

	t.Run("valid quote without extend keeps its window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{
			QuoteID:       testQuoteID,
			Status:        entities.QuoteStatusEstimated,
			ExpiresAtTs:   9000,
			ConfigVersion: "cfgv1",
			Params:        validParams(),
		}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(5000))
		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Refresh(context.Background(), testQuoteID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ExpiresAtTs != 9000 {
			t.Fatalf("window should be untouched, got %d", q.ExpiresAtTs)
		}
	})

	t.Run("extend_ttl renews the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{
			QuoteID:       testQuoteID,
			Status:        entities.QuoteStatusEstimated,
			ExpiresAtTs:   9000,
			ConfigVersion: "cfgv1",
			Params:        validParams(),
		}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(5000))
		knownCatalog(cfg)
		cfg.EXPECT().Version().Return("cfgv1")
		signer.EXPECT().Sign(gomock.Any()).Return("sig")
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).Return(nil)

		q, err := uc.Refresh(context.Background(), testQuoteID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ExpiresAtTs != 5000+1800 {
			t.Fatalf("expected renewed expiry, got %d", q.ExpiresAtTs)
		}
	})
}

func TestQuoteLifecycleUseCase_Lock(t *testing.T) {
	t.Run("already locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusLocked}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)

		_, err := uc.Lock(context.Background(), testQuoteID, "")
		if !errors.Is(err, ErrQuoteLocked) {
			t.Fatalf("expected ErrQuoteLocked, got %v", err)
		}
	})

	t.Run("expired cannot lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 2000}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(2001))

		_, err := uc.Lock(context.Background(), testQuoteID, "")
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("signature mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 2000}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1000))
		signer.EXPECT().Verify(stored, "tampered").Return(false)

		_, err := uc.Lock(context.Background(), testQuoteID, "tampered")
		if !errors.Is(err, ErrQuoteSignatureMismatch) {
			t.Fatalf("expected ErrQuoteSignatureMismatch, got %v", err)
		}
	})

	t.Run("config drift refuses to lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 2000, ConfigVersion: "cfgv1"}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1000))
		cfg.EXPECT().Version().Return("cfgv2")

		_, err := uc.Lock(context.Background(), testQuoteID, "")
		if !errors.Is(err, ErrQuoteConfigChanged) {
			t.Fatalf("expected ErrQuoteConfigChanged, got %v", err)
		}
	})

	t.Run("recalc_required refuses to lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusRecalcRequired, ExpiresAtTs: 2000, ConfigVersion: "cfgv1"}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1000))
		cfg.EXPECT().Version().Return("cfgv1").AnyTimes()

		_, err := uc.Lock(context.Background(), testQuoteID, "")
		if !errors.Is(err, ErrQuoteConfigChanged) {
			t.Fatalf("expected ErrQuoteConfigChanged, got %v", err)
		}
	})

	t.Run("success shortens validity to the lock window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigSource(ctrl)
		signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
		uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

		stored := entities.Quote{QuoteID: testQuoteID, Status: entities.QuoteStatusEstimated, ExpiresAtTs: 9000, ConfigVersion: "cfgv1", Signature: "sig"}
		repo.EXPECT().Load(gomock.Any(), testQuoteID).Return(stored, nil)
		repo.EXPECT().Now().Return(int64(1000))
		signer.EXPECT().Verify(stored, "sig").Return(true)
		cfg.EXPECT().Version().Return("cfgv1")
		signer.EXPECT().Sign(gomock.Any()).Return("locked-sig")

		var saved entities.Quote
		repo.EXPECT().Save(gomock.Any(), testQuoteID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q entities.Quote) error {
				saved = q
				return nil
			})

		q, err := uc.Lock(context.Background(), testQuoteID, "sig")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusLocked {
			t.Fatalf("expected locked, got %s", q.Status)
		}
		if q.LockedAtTs == nil || *q.LockedAtTs != 1000 {
			t.Fatalf("expected lockedAtTs stamped, got %v", q.LockedAtTs)
		}
		if q.ExpiresAtTs != 1900 {
			t.Fatalf("expected lock window 1900, got %d", q.ExpiresAtTs)
		}
		if saved.Signature != "locked-sig" {
			t.Fatalf("lock transition must be re-signed, got %q", saved.Signature)
		}
	})
}

func TestQuoteLifecycleUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	cfg := mock_interfaces.NewMockIConfigSource(ctrl)
	signer := mock_interfaces.NewMockIQuoteSigner(ctrl)
	uc := NewQuoteLifecycleUseCase(repo, cfg, signer, 1800, 900)

	expected := []entities.Quote{{QuoteID: testQuoteID}}
	var seen interfaces.QuoteListQuery
	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, query interfaces.QuoteListQuery) ([]entities.Quote, string, error) {
			seen = query
			return expected, "cursor-1", nil
		})

	items, next, err := uc.List(context.Background(), interfaces.QuoteListQuery{Limit: 10, Search: "  pla  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || next != "cursor-1" {
		t.Fatalf("unexpected page: items=%d next=%q", len(items), next)
	}
	if seen.Search != "pla" {
		t.Fatalf("search term should be trimmed, got %q", seen.Search)
	}
}
