package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api.test"

func ptr(v float64) *float64 { return &v }

type coordinatorFixture struct {
	ctx     context.Context
	backend *MockBackend
	store   *repositories.SessionMemoryRepository
	journal *MockTransferWriter
	kafka   *MockKafkaWriter
	coord   *Coordinator
}

// newFixture builds a logged-in coordinator with wallet and game balances loaded.
func newFixture(t *testing.T, wallet float64, game *float64) *coordinatorFixture {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	backend := NewMockBackend(ctrl)
	journal := NewMockTransferWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	store := repositories.NewSessionMemoryRepository()

	backend.EXPECT().DiscoverAPIBase(gomock.Any()).Return(testBaseURL, nil).AnyTimes()

	coord := NewCoordinator(backend, store, nil, journal, nil, kafkaWriter, CoordinatorConfig{
		Limits:         models.LimitsModal,
		ExchangeRate:   30,
		SuccessDisplay: 50 * time.Millisecond,
	})

	require.NoError(t, store.SaveSession(ctx, models.Session{Token: "tok"}))
	require.NoError(t, coord.SelectGame(ctx, "12"))

	backend.EXPECT().GetUser(gomock.Any(), testBaseURL, "tok").
		Return(&models.UserProfile{Balance: ptr(wallet)}, http.StatusOK, nil)
	_, err := coord.RefreshWallet(ctx)
	require.NoError(t, err)

	backend.EXPECT().GetGameBalance(gomock.Any(), testBaseURL, "tok", models.GameID("12")).
		Return(&models.GameBalanceResponse{Balance: game}, http.StatusOK, nil)
	_, err = coord.FetchBalance(ctx, "")
	require.NoError(t, err)

	return &coordinatorFixture{ctx: ctx, backend: backend, store: store, journal: journal, kafka: kafkaWriter, coord: coord}
}

func TestCoordinator_Transfer_OptimisticUpdate(t *testing.T) {
	f := newFixture(t, 1000, ptr(50))

	f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", models.GameLoginRequest{GameID: "12", Points: 300}).
		Return(http.StatusOK, nil)
	f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.TransferRecord) error {
			assert.Equal(t, models.TransferRecordSuccess, rec.Status)
			assert.Equal(t, int64(300), rec.Points)
			assert.Equal(t, int64(10), rec.ConvertedUnits)
			assert.Equal(t, "12", rec.GameID)
			assert.NotEmpty(t, rec.TransferID)
			return nil
		})
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			var txn models.Transaction
			require.NoError(t, json.Unmarshal(msgs[0].Value, &txn))
			assert.Equal(t, "transfer", txn.Operation)
			assert.Equal(t, 300.0, txn.Amount)
			assert.Equal(t, string(msgs[0].Key), txn.TransactionID)
			return nil
		})

	outcome, err := f.coord.Transfer(f.ctx, "", 300)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, int64(300), outcome.Points)
	assert.Empty(t, outcome.Links)

	status := f.coord.State()
	assert.Equal(t, models.TransferStateSuccess, status.State)
	assert.Equal(t, MessageTransferSuccess, status.Message)
	assert.Equal(t, 700.0, status.Balance.Wallet)
	require.NotNil(t, status.Balance.Game)
	assert.Equal(t, 350.0, *status.Balance.Game)

	assert.Eventually(t, func() bool {
		return f.coord.State().State == models.TransferStateIdle
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, models.TransferStateSuccess, f.coord.State().Last)
}

func TestCoordinator_Transfer_SendsQuantizedAmount(t *testing.T) {
	f := newFixture(t, 1000, ptr(0))

	f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", models.GameLoginRequest{GameID: "12", Points: 90}).
		Return(http.StatusCreated, nil)
	f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := f.coord.Transfer(f.ctx, "", 95)
	require.NoError(t, err)
	assert.Equal(t, int64(90), outcome.Points)
	assert.Equal(t, 910.0, f.coord.State().Balance.Wallet)
}

func TestCoordinator_Transfer_UnknownGameBalanceStaysUnknown(t *testing.T) {
	f := newFixture(t, 1000, ptr(10))

	f.backend.EXPECT().GetGameBalance(gomock.Any(), testBaseURL, "tok", models.GameID("12")).
		Return(nil, 0, errors.New("connection reset"))
	_, err := f.coord.FetchBalance(f.ctx, "12")
	require.ErrorIs(t, err, ErrFetch)
	assert.Nil(t, f.coord.State().Balance.Game)

	f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", gomock.Any()).Return(http.StatusOK, nil)
	f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err = f.coord.Transfer(f.ctx, "", 300)
	require.NoError(t, err)
	status := f.coord.State()
	assert.Equal(t, 700.0, status.Balance.Wallet)
	assert.Nil(t, status.Balance.Game)
}

func TestCoordinator_Transfer_ValidationRejected(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		violation models.Violation
	}{
		{name: "below minimum", amount: 20, violation: models.ViolationBelowMin},
		{name: "insufficient balance", amount: 600, violation: models.ViolationInsufficientBalance},
		{name: "zero", amount: 0, violation: models.ViolationBelowMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 500, ptr(0))

			outcome, err := f.coord.Transfer(f.ctx, "", tt.amount)
			require.ErrorIs(t, err, ErrValidation)
			assert.False(t, outcome.OK)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Violations, tt.violation)

			status := f.coord.State()
			assert.Equal(t, models.TransferStateIdle, status.State)
			assert.Equal(t, 500.0, status.Balance.Wallet)
		})
	}
}

func TestCoordinator_Transfer_Failure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "accepted is not success", status: http.StatusAccepted},
		{name: "transport error", err: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1000, ptr(50))

			f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", gomock.Any()).Return(tt.status, tt.err)
			f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec models.TransferRecord) error {
					assert.Equal(t, models.TransferRecordFailed, rec.Status)
					assert.NotEmpty(t, rec.Reason)
					return nil
				})

			outcome, err := f.coord.Transfer(f.ctx, "", 300)
			require.ErrorIs(t, err, ErrTransfer)
			assert.False(t, outcome.OK)
			assert.Equal(t, MessageTransferFailed, outcome.Reason)

			status := f.coord.State()
			assert.Equal(t, models.TransferStateIdle, status.State)
			assert.Equal(t, models.TransferStateFailed, status.Last)
			assert.Equal(t, MessageTransferFailed, status.Message)
			assert.Equal(t, 1000.0, status.Balance.Wallet)
			require.NotNil(t, status.Balance.Game)
			assert.Equal(t, 50.0, *status.Balance.Game)
		})
	}
}

func TestCoordinator_Transfer_RejectedWhileLoading(t *testing.T) {
	f := newFixture(t, 1000, ptr(0))

	started := make(chan struct{})
	release := make(chan struct{})
	f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", gomock.Any()).DoAndReturn(
		func(context.Context, string, string, models.GameLoginRequest) (int, error) {
			close(started)
			<-release
			return http.StatusOK, nil
		})
	f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.coord.Transfer(f.ctx, "", 300)
		done <- err
	}()
	<-started

	assert.Equal(t, models.TransferStateLoading, f.coord.State().State)
	assert.False(t, f.coord.Preview(300).CanConfirm)

	outcome, err := f.coord.Transfer(f.ctx, "", 300)
	assert.ErrorIs(t, err, ErrTransferInProgress)
	assert.Equal(t, MessageTransferInProgress, outcome.Reason)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 700.0, f.coord.State().Balance.Wallet)
}

func TestCoordinator_Transfer_SpecialFlowAttachesLinks(t *testing.T) {
	f := newFixture(t, 1000, ptr(0))
	require.NoError(t, f.coord.SelectSpecialFlow(f.ctx))

	f.backend.EXPECT().LoginToGame(gomock.Any(), testBaseURL, "tok", models.GameLoginRequest{GameID: "daga", Points: 300}).
		Return(http.StatusOK, nil)
	f.journal.EXPECT().SaveTransfer(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().GetLinks(gomock.Any(), testBaseURL, "tok").
		Return(&models.LinksResponse{Data: []models.Link{{Value: "https://daga.test/play"}}}, http.StatusOK, nil)

	outcome, err := f.coord.Transfer(f.ctx, "", 300)
	require.NoError(t, err)
	require.Len(t, outcome.Links, 1)
	assert.Equal(t, "https://daga.test/play", outcome.Links[0].Value)
}

func TestCoordinator_Transfer_NoGameSelected(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	store := repositories.NewSessionMemoryRepository()
	require.NoError(t, store.SaveSession(ctx, models.Session{Token: "tok"}))

	coord := NewCoordinator(backend, store, nil, nil, nil, nil, CoordinatorConfig{})

	outcome, err := coord.Transfer(ctx, "", 300)
	assert.ErrorIs(t, err, ErrNoGameSelected)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MessageGameNotFound, outcome.Reason)
}

func TestCoordinator_Transfer_RequiresSession(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := repositories.NewSessionMemoryRepository()
	coord := NewCoordinator(NewMockBackend(ctrl), store, nil, nil, nil, nil, CoordinatorConfig{})

	_, err := coord.Transfer(ctx, "12", 300)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestCoordinator_Login(t *testing.T) {
	tests := []struct {
		name    string
		message models.LoginMessage
	}{
		{name: "success", message: models.LoginSuccess},
		{name: "password reset required", message: models.RequireResetPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			backend := NewMockBackend(ctrl)
			store := NewMockSessionStore(ctrl)

			user := json.RawMessage(`{"id":7}`)
			backend.EXPECT().DiscoverAPIBase(ctx).Return(testBaseURL, nil)
			backend.EXPECT().Login(ctx, testBaseURL, models.LoginRequest{Phone: "0900", Password: "secret"}).
				Return(&models.LoginResponse{Token: "tok", User: user, Message: tt.message}, http.StatusOK, nil)
			store.EXPECT().SaveSession(ctx, models.Session{Token: "tok", User: user, Message: tt.message}).Return(nil)

			coord := NewCoordinator(backend, store, nil, nil, nil, nil, CoordinatorConfig{})
			session, err := coord.Login(ctx, "0900", "secret")

			require.NoError(t, err)
			assert.Equal(t, "tok", session.Token)
			assert.Equal(t, tt.message, session.Message)
		})
	}
}

func TestCoordinator_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    *models.LoginResponse
		status  int
		err     error
		wantErr error
	}{
		{name: "rejected", status: http.StatusUnauthorized, wantErr: ErrAuth},
		{name: "transport", err: errors.New("dial tcp"), wantErr: ErrAuth},
		{name: "empty token", resp: &models.LoginResponse{}, status: http.StatusOK, wantErr: ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			backend := NewMockBackend(ctrl)
			// No SaveSession expectation: the store must stay untouched.
			store := NewMockSessionStore(ctrl)

			backend.EXPECT().DiscoverAPIBase(ctx).Return(testBaseURL, nil)
			backend.EXPECT().Login(ctx, testBaseURL, gomock.Any()).Return(tt.resp, tt.status, tt.err)

			coord := NewCoordinator(backend, store, nil, nil, nil, nil, CoordinatorConfig{})
			session, err := coord.Login(ctx, "0900", "bad")

			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCoordinator_Login_DiscoveryFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)

	backend.EXPECT().DiscoverAPIBase(ctx).Return("", errors.New("no such host"))

	coord := NewCoordinator(backend, NewMockSessionStore(ctrl), nil, nil, nil, nil, CoordinatorConfig{})
	_, err := coord.Login(ctx, "0900", "secret")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestCoordinator_Logout(t *testing.T) {
	f := newFixture(t, 1000, ptr(5))

	require.NoError(t, f.coord.Logout(f.ctx))

	session, err := f.store.GetSession(f.ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
	status := f.coord.State()
	assert.Zero(t, status.Balance.Wallet)
	assert.Nil(t, status.Balance.Game)

	_, err = f.coord.CurrentSession(f.ctx)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestCoordinator_DiscoverAPIBase_Cache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	cache := NewMockBaseURLCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().GetBaseURL(ctx).Return("", errors.New("cache miss")),
		backend.EXPECT().DiscoverAPIBase(ctx).Return(testBaseURL, nil),
		cache.EXPECT().SetBaseURL(ctx, testBaseURL).Return(nil),
		cache.EXPECT().GetBaseURL(ctx).Return(testBaseURL, nil),
	)

	coord := NewCoordinator(backend, NewMockSessionStore(ctrl), cache, nil, nil, nil, CoordinatorConfig{})

	baseURL, err := coord.DiscoverAPIBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, testBaseURL, baseURL)

	baseURL, err = coord.DiscoverAPIBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, testBaseURL, baseURL)
}

func TestCoordinator_FetchBalance_MissingFieldIsZero(t *testing.T) {
	f := newFixture(t, 100, nil)

	status := f.coord.State()
	require.NotNil(t, status.Balance.Game)
	assert.Zero(t, *status.Balance.Game)
	assert.Equal(t, models.GameID("12"), status.Balance.GameID)
}

func TestCoordinator_FetchBalance_Rejected(t *testing.T) {
	f := newFixture(t, 100, ptr(3))

	f.backend.EXPECT().GetGameBalance(gomock.Any(), testBaseURL, "tok", models.GameID("12")).
		Return(nil, http.StatusNotFound, nil)

	_, err := f.coord.FetchBalance(f.ctx, "12")
	assert.ErrorIs(t, err, ErrFetch)
	assert.Nil(t, f.coord.State().Balance.Game)
}

func TestCoordinator_GameCategories_DegradesToNil(t *testing.T) {
	f := newFixture(t, 100, ptr(0))

	f.backend.EXPECT().GetGameCategories(gomock.Any(), testBaseURL, "tok").
		Return(nil, http.StatusBadGateway, nil)
	assert.Nil(t, f.coord.GameCategories(f.ctx))

	games := []models.Category{{Name: "Slots"}}
	f.backend.EXPECT().GetGameCategories(gomock.Any(), testBaseURL, "tok").
		Return(&models.GameCategoriesResponse{Games: games}, http.StatusOK, nil)
	assert.Equal(t, games, f.coord.GameCategories(f.ctx))
}

func TestCoordinator_SelectGame_ResetsGameBalance(t *testing.T) {
	f := newFixture(t, 100, ptr(40))

	require.NoError(t, f.coord.SelectGame(f.ctx, "12"))
	require.NotNil(t, f.coord.State().Balance.Game)

	require.NoError(t, f.coord.SelectGame(f.ctx, "99"))
	status := f.coord.State()
	assert.Equal(t, models.GameID("99"), status.Balance.GameID)
	assert.Nil(t, status.Balance.Game)

	flag, err := f.store.GetSpecialFlow(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, flag)
}

func TestCoordinator_PreviewAll(t *testing.T) {
	f := newFixture(t, 1000, ptr(0))

	preview := f.coord.PreviewAll()
	assert.Equal(t, 1000.0, preview.RawAmount)
	assert.Equal(t, int64(990), preview.Conversion.QuantizedAmount)
	assert.Equal(t, int64(33), preview.Conversion.ConvertedUnits)
	assert.True(t, preview.CanConfirm)
}

func TestCoordinator_History(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := NewMockTransferReader(ctrl)

	records := []models.TransferRecord{{TransferID: "a", Status: models.TransferRecordSuccess}}
	reader.EXPECT().ListTransfers(ctx, 10).Return(records, nil)

	coord := NewCoordinator(NewMockBackend(ctrl), NewMockSessionStore(ctrl), nil, nil, reader, nil, CoordinatorConfig{})
	got, err := coord.History(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	disabled := NewCoordinator(NewMockBackend(ctrl), NewMockSessionStore(ctrl), nil, nil, nil, nil, CoordinatorConfig{})
	_, err = disabled.History(ctx, 10)
	assert.ErrorIs(t, err, ErrJournalDisabled)
}
