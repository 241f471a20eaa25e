package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/mocks/usecase"
)

type LeaseUseCaseTestSuite struct {
	suite.Suite
	errUnknown    error
	now           time.Time
	user          entity.Principal
	other         entity.Principal
	admin         entity.Principal
	leaseRepoMock *usecase.MockLeaseRepository
	uc            *LeaseUseCase
}

func (suite *LeaseUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	suite.user = entity.Principal{ID: 7, Role: entity.RoleUser}
	suite.other = entity.Principal{ID: 8, Role: entity.RoleUser}
	suite.admin = entity.Principal{ID: 1, Role: entity.RoleAdmin}
}

func (suite *LeaseUseCaseTestSuite) SetupSubTest() {
	suite.leaseRepoMock = usecase.NewMockLeaseRepository(suite.T())
	suite.uc = NewLeaseUseCase(suite.leaseRepoMock, func() time.Time { return suite.now })
}

func (suite *LeaseUseCaseTestSuite) TearDownSubTest() {
	suite.leaseRepoMock.AssertExpectations(suite.T())
}

func (suite *LeaseUseCaseTestSuite) at(d time.Duration) *time.Time {
	t := suite.now.Add(d)
	return &t
}

func (suite *LeaseUseCaseTestSuite) lease(ownerID int64, expiresAt *time.Time) *entity.Lease {
	return &entity.Lease{
		ID:         3,
		PathPrefix: "shop",
		OwnerID:    ownerID,
		Status:     entity.LeasePaid,
		CreatedAt:  suite.now.AddDate(0, -2, 0),
		ExpiresAt:  expiresAt,
		Version:    2,
	}
}

func (suite *LeaseUseCaseTestSuite) TestAuthorize() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		err := suite.uc.Authorize(ctx, entity.Principal{}, "shop")

		suite.ErrorIs(err, entity.ErrPrefixNotAvailable)
	})

	suite.Run("no lease", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(nil, entity.ErrLeaseNotFound)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		var notAvailable *entity.PrefixNotAvailableError
		suite.Require().ErrorAs(err, &notAvailable)
		suite.Equal(entity.ReasonNotOwned, notAvailable.Reason)
		suite.Nil(notAvailable.ExpiresAt)
	})

	suite.Run("owned by someone else", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.other.ID, suite.at(time.Hour)), nil)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		suite.ErrorIs(err, entity.ErrPrefixNotAvailable)
	})

	suite.Run("own lease expired", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.user.ID, suite.at(-time.Hour)), nil)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		suite.ErrorIs(err, entity.ErrPrefixNotAvailable)
	})

	suite.Run("own lease never paid", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.user.ID, nil), nil)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		suite.ErrorIs(err, entity.ErrPrefixNotAvailable)
	})

	suite.Run("unknown error", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(nil, suite.errUnknown)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		suite.ErrorIs(err, suite.errUnknown)
		suite.NotErrorIs(err, entity.ErrPrefixNotAvailable)
	})

	suite.Run("active own lease", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.user.ID, suite.at(time.Hour)), nil)

		err := suite.uc.Authorize(ctx, suite.user, "shop")

		suite.NoError(err)
	})
}

func (suite *LeaseUseCaseTestSuite) TestRequestLease() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		lease, err := suite.uc.RequestLease(ctx, entity.Principal{}, "shop")

		suite.ErrorIs(err, entity.ErrUnauthenticated)
		suite.Nil(lease)
	})

	suite.Run("invalid format", func() {
		for _, prefix := range []string{"ab", "has space", "url_bindings", "ping"} {
			lease, err := suite.uc.RequestLease(ctx, suite.user, prefix)

			suite.ErrorIs(err, entity.ErrInvalidFormat, prefix)
			suite.Nil(lease)
		}
	})

	suite.Run("free prefix", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(nil, entity.ErrLeaseNotFound)
		suite.leaseRepoMock.
			On("Create", ctx, "shop", suite.user.ID, suite.now).
			Once().
			Return(&entity.Lease{ID: 3, PathPrefix: "shop", OwnerID: suite.user.ID, Status: entity.LeaseUnpaid, CreatedAt: suite.now, Version: 1}, nil)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "  shop ")

		suite.NoError(err)
		suite.Equal(entity.LeaseUnpaid, lease.Status)
		suite.Nil(lease.ExpiresAt)
	})

	suite.Run("created concurrently and still unpaid", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(nil, entity.ErrLeaseNotFound)
		suite.leaseRepoMock.
			On("Create", ctx, "shop", suite.user.ID, suite.now).
			Once().
			Return(nil, entity.ErrPrefixExists)
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.other.ID, nil), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.MatchedBy(func(l *entity.Lease) bool {
				return l.OwnerID == suite.user.ID && l.Version == 2
			})).
			Once().
			Return(nil, entity.ErrStaleLease)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "shop")

		var notAvailable *entity.PrefixNotAvailableError
		suite.Require().ErrorAs(err, &notAvailable)
		suite.Equal(entity.ReasonTaken, notAvailable.Reason)
		suite.Nil(lease)
	})

	suite.Run("active lease of another principal", func() {
		expiresAt := suite.at(48 * time.Hour)

		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.other.ID, expiresAt), nil)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "shop")

		var notAvailable *entity.PrefixNotAvailableError
		suite.Require().ErrorAs(err, &notAvailable)
		suite.Equal(entity.ReasonTaken, notAvailable.Reason)
		suite.Equal(expiresAt, notAvailable.ExpiresAt)
		suite.Contains(err.Error(), "2026-03-17")
		suite.Nil(lease)
	})

	suite.Run("active lease of the same principal", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.user.ID, suite.at(time.Hour)), nil)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "shop")

		var notAvailable *entity.PrefixNotAvailableError
		suite.Require().ErrorAs(err, &notAvailable)
		suite.Equal(entity.ReasonOwned, notAvailable.Reason)
		suite.Nil(lease)
	})

	suite.Run("lapsed lease is handed over", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(suite.lease(suite.other.ID, suite.at(-time.Hour)), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.MatchedBy(func(l *entity.Lease) bool {
				return l.ID == 3 &&
					l.OwnerID == suite.user.ID &&
					l.Status == entity.LeaseUnpaid &&
					l.CreatedAt.Equal(suite.now) &&
					l.ExpiresAt == nil &&
					l.Version == 2
			})).
			Once().
			Return(&entity.Lease{ID: 3, PathPrefix: "shop", OwnerID: suite.user.ID, Status: entity.LeaseUnpaid, CreatedAt: suite.now, Version: 3}, nil)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "shop")

		suite.NoError(err)
		suite.Equal(suite.user.ID, lease.OwnerID)
		suite.Equal(int64(3), lease.Version)
	})

	suite.Run("unknown error", func() {
		suite.leaseRepoMock.
			On("RetrieveByPrefix", ctx, "shop").
			Once().
			Return(nil, suite.errUnknown)

		lease, err := suite.uc.RequestLease(ctx, suite.user, "shop")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(lease)
	})
}

func (suite *LeaseUseCaseTestSuite) TestPay() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		lease, err := suite.uc.Pay(ctx, entity.Principal{}, 3)

		suite.ErrorIs(err, entity.ErrUnauthenticated)
		suite.Nil(lease)
	})

	suite.Run("not admin", func() {
		lease, err := suite.uc.Pay(ctx, suite.user, 3)

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(lease)
	})

	suite.Run("lease not found", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(nil, entity.ErrLeaseNotFound)

		lease, err := suite.uc.Pay(ctx, suite.admin, 3)

		suite.ErrorIs(err, entity.ErrNotFound)
		suite.Nil(lease)
	})

	suite.Run("first payment", func() {
		want := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.user.ID, nil), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.MatchedBy(func(l *entity.Lease) bool {
				return l.Status == entity.LeasePaid && l.ExpiresAt != nil && l.ExpiresAt.Equal(want)
			})).
			Once().
			Return(&entity.Lease{ID: 3, Status: entity.LeasePaid, ExpiresAt: &want}, nil)

		lease, err := suite.uc.Pay(ctx, suite.admin, 3)

		suite.NoError(err)
		suite.Equal(entity.LeasePaid, lease.Status)
	})

	suite.Run("renewal extends remaining validity", func() {
		current := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		want := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.user.ID, &current), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.MatchedBy(func(l *entity.Lease) bool {
				return l.ExpiresAt != nil && l.ExpiresAt.Equal(want)
			})).
			Once().
			Return(&entity.Lease{ID: 3, Status: entity.LeasePaid, ExpiresAt: &want}, nil)

		_, err := suite.uc.Pay(ctx, suite.admin, 3)

		suite.NoError(err)
	})

	suite.Run("lapsed lease restarts from now", func() {
		lapsed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		want := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.user.ID, &lapsed), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.MatchedBy(func(l *entity.Lease) bool {
				return l.ExpiresAt != nil && l.ExpiresAt.Equal(want)
			})).
			Once().
			Return(&entity.Lease{ID: 3, Status: entity.LeasePaid, ExpiresAt: &want}, nil)

		_, err := suite.uc.Pay(ctx, suite.admin, 3)

		suite.NoError(err)
	})

	suite.Run("concurrent modification", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.user.ID, nil), nil)
		suite.leaseRepoMock.
			On("Update", ctx, mock.Anything).
			Once().
			Return(nil, entity.ErrStaleLease)

		lease, err := suite.uc.Pay(ctx, suite.admin, 3)

		suite.ErrorIs(err, entity.ErrStaleLease)
		suite.Nil(lease)
	})
}

func (suite *LeaseUseCaseTestSuite) TestFind() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		_, err := suite.uc.Find(ctx, entity.Principal{}, 3)

		suite.ErrorIs(err, entity.ErrUnauthenticated)
	})

	suite.Run("forbidden", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.other.ID, nil), nil)

		lease, err := suite.uc.Find(ctx, suite.user, 3)

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(lease)
	})

	suite.Run("admin", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.other.ID, nil), nil)

		lease, err := suite.uc.Find(ctx, suite.admin, 3)

		suite.NoError(err)
		suite.Equal(suite.other.ID, lease.OwnerID)
	})
}

func (suite *LeaseUseCaseTestSuite) TestListByOwner() {
	ctx := context.Background()

	suite.Run("other owner", func() {
		leases, err := suite.uc.ListByOwner(ctx, suite.user, suite.other.ID)

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(leases)
	})

	suite.Run("own leases", func() {
		suite.leaseRepoMock.
			On("ListByOwner", ctx, suite.user.ID).
			Once().
			Return([]entity.Lease{*suite.lease(suite.user.ID, nil)}, nil)

		leases, err := suite.uc.ListByOwner(ctx, suite.user, suite.user.ID)

		suite.NoError(err)
		suite.Len(leases, 1)
	})
}

func (suite *LeaseUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	suite.Run("forbidden", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.other.ID, nil), nil)

		err := suite.uc.Delete(ctx, suite.user, 3)

		suite.ErrorIs(err, entity.ErrForbidden)
	})

	suite.Run("admin is not owner", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.other.ID, nil), nil)

		err := suite.uc.Delete(ctx, suite.admin, 3)

		suite.ErrorIs(err, entity.ErrForbidden)
	})

	suite.Run("success", func() {
		suite.leaseRepoMock.
			On("RetrieveByID", ctx, int64(3)).
			Once().
			Return(suite.lease(suite.user.ID, nil), nil)
		suite.leaseRepoMock.
			On("Remove", ctx, int64(3)).
			Once().
			Return(nil)

		err := suite.uc.Delete(ctx, suite.user, 3)

		suite.NoError(err)
	})
}

func TestLeaseUseCase(t *testing.T) {
	suite.Run(t, new(LeaseUseCaseTestSuite))
}
