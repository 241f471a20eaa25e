package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/shortkey"
	"github.com/vadimbarashkov/shortlink/mocks/usecase"
)

type BindingUseCaseTestSuite struct {
	suite.Suite
	errUnknown      error
	user            entity.Principal
	other           entity.Principal
	admin           entity.Principal
	uid             string
	bindingRepoMock *usecase.MockBindingRepository
	authorizerMock  *usecase.MockPrefixAuthorizer
	uc              *BindingUseCase
}

func (suite *BindingUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.user = entity.Principal{ID: 7, Role: entity.RoleUser}
	suite.other = entity.Principal{ID: 8, Role: entity.RoleUser}
	suite.admin = entity.Principal{ID: 1, Role: entity.RoleAdmin}
	suite.uid = "/" + shortkey.Suffix("https://example.com")
}

func (suite *BindingUseCaseTestSuite) SetupSubTest() {
	suite.bindingRepoMock = usecase.NewMockBindingRepository(suite.T())
	suite.authorizerMock = usecase.NewMockPrefixAuthorizer(suite.T())
	suite.uc = NewBindingUseCase(suite.bindingRepoMock, suite.authorizerMock)
}

func (suite *BindingUseCaseTestSuite) TearDownSubTest() {
	suite.bindingRepoMock.AssertExpectations(suite.T())
	suite.authorizerMock.AssertExpectations(suite.T())
}

func (suite *BindingUseCaseTestSuite) binding(uid string, ownerID, count int64) *entity.Binding {
	return &entity.Binding{
		ID:          1,
		UID:         uid,
		OriginalURL: "https://example.com",
		OwnerID:     ownerID,
		Count:       count,
	}
}

func (suite *BindingUseCaseTestSuite) TestAllocate() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		b, err := suite.uc.Allocate(ctx, entity.Principal{}, "https://example.com", "")

		suite.ErrorIs(err, entity.ErrUnauthenticated)
		suite.Nil(b)
	})

	suite.Run("invalid url", func() {
		for _, raw := range []string{"", "example.com", "ftp://example.com/file", "https://"} {
			b, err := suite.uc.Allocate(ctx, suite.user, raw, "")

			suite.ErrorIs(err, entity.ErrInvalidURL, raw)
			suite.Nil(b)
		}
	})

	suite.Run("invalid prefix", func() {
		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "a/b")

		suite.ErrorIs(err, entity.ErrInvalidFormat)
		suite.Nil(b)
	})

	suite.Run("prefix not leased", func() {
		suite.authorizerMock.
			On("Authorize", ctx, suite.user, "shop").
			Once().
			Return(&entity.PrefixNotAvailableError{Prefix: "shop"})

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "shop")

		suite.ErrorIs(err, entity.ErrPrefixNotAvailable)
		suite.Nil(b)
	})

	suite.Run("new binding", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, suite.uid, "https://example.com", suite.user.ID).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Allocate(ctx, suite.user, "  https://example.com  ", "")

		suite.NoError(err)
		suite.Equal(suite.uid, b.UID)
		suite.Len(b.UID, 1+shortkey.Length)
		suite.Zero(b.Count)
	})

	suite.Run("new binding under prefix", func() {
		uid := "/shop" + suite.uid

		suite.authorizerMock.
			On("Authorize", ctx, suite.user, "shop").
			Once().
			Return(nil)
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, uid).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, uid, "https://example.com", suite.user.ID).
			Once().
			Return(suite.binding(uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", " shop ")

		suite.NoError(err)
		suite.Equal(uid, b.UID)
	})

	suite.Run("existing binding is reassigned", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 42), nil)
		suite.bindingRepoMock.
			On("Reassign", ctx, int64(1), suite.user.ID).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.NoError(err)
		suite.Equal(suite.user.ID, b.OwnerID)
		suite.Zero(b.Count)
	})

	suite.Run("created concurrently", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, suite.uid, "https://example.com", suite.user.ID).
			Once().
			Return(nil, entity.ErrUIDExists)
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 0), nil)
		suite.bindingRepoMock.
			On("Reassign", ctx, int64(1), suite.user.ID).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.NoError(err)
		suite.Equal(suite.user.ID, b.OwnerID)
	})

	suite.Run("binding removed before reassign", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 3), nil)
		suite.bindingRepoMock.
			On("Reassign", ctx, int64(1), suite.user.ID).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, suite.uid, "https://example.com", suite.user.ID).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.NoError(err)
		suite.Equal(suite.user.ID, b.OwnerID)
		suite.Zero(b.Count)
	})

	suite.Run("binding removed before reassign and create fails", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 3), nil)
		suite.bindingRepoMock.
			On("Reassign", ctx, int64(1), suite.user.ID).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, suite.uid, "https://example.com", suite.user.ID).
			Once().
			Return(nil, suite.errUnknown)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.ErrorIs(err, suite.errUnknown)
		suite.NotErrorIs(err, entity.ErrNotFound)
		suite.Nil(b)
	})

	suite.Run("created concurrently and removed again", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(nil, entity.ErrBindingNotFound)
		suite.bindingRepoMock.
			On("Create", ctx, suite.uid, "https://example.com", suite.user.ID).
			Once().
			Return(nil, entity.ErrUIDExists)
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 0), nil)
		suite.bindingRepoMock.
			On("Reassign", ctx, int64(1), suite.user.ID).
			Once().
			Return(nil, entity.ErrBindingNotFound)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.ErrorIs(err, entity.ErrBindingNotFound)
		suite.Nil(b)
	})

	suite.Run("unknown error", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(nil, suite.errUnknown)

		b, err := suite.uc.Allocate(ctx, suite.user, "https://example.com", "")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(b)
	})
}

func (suite *BindingUseCaseTestSuite) TestFind() {
	ctx := context.Background()

	suite.Run("invalid format", func() {
		b, err := suite.uc.Find(ctx, suite.user, "/a/b/c")

		suite.ErrorIs(err, entity.ErrInvalidFormat)
		suite.Nil(b)
	})

	suite.Run("not found", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(nil, entity.ErrBindingNotFound)

		b, err := suite.uc.Find(ctx, suite.user, suite.uid)

		suite.ErrorIs(err, entity.ErrNotFound)
		suite.Nil(b)
	})

	suite.Run("forbidden", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 0), nil)

		b, err := suite.uc.Find(ctx, suite.user, suite.uid)

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(b)
	})

	suite.Run("owner without leading slash", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 5), nil)

		b, err := suite.uc.Find(ctx, suite.user, suite.uid[1:])

		suite.NoError(err)
		suite.Equal(int64(5), b.Count)
	})

	suite.Run("admin", func() {
		suite.bindingRepoMock.
			On("RetrieveByUID", ctx, suite.uid).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 0), nil)

		_, err := suite.uc.Find(ctx, suite.admin, suite.uid)

		suite.NoError(err)
	})
}

func (suite *BindingUseCaseTestSuite) TestListByOwner() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		_, err := suite.uc.ListByOwner(ctx, entity.Principal{}, suite.user.ID)

		suite.ErrorIs(err, entity.ErrUnauthenticated)
	})

	suite.Run("other owner", func() {
		_, err := suite.uc.ListByOwner(ctx, suite.user, suite.other.ID)

		suite.ErrorIs(err, entity.ErrForbidden)
	})

	suite.Run("admin", func() {
		suite.bindingRepoMock.
			On("ListByOwner", ctx, suite.other.ID).
			Once().
			Return([]entity.Binding{*suite.binding(suite.uid, suite.other.ID, 0)}, nil)

		bindings, err := suite.uc.ListByOwner(ctx, suite.admin, suite.other.ID)

		suite.NoError(err)
		suite.Len(bindings, 1)
	})
}

func (suite *BindingUseCaseTestSuite) TestReset() {
	ctx := context.Background()

	suite.Run("not found", func() {
		suite.bindingRepoMock.
			On("RetrieveByID", ctx, int64(1)).
			Once().
			Return(nil, entity.ErrBindingNotFound)

		b, err := suite.uc.Reset(ctx, suite.user, 1)

		suite.ErrorIs(err, entity.ErrBindingNotFound)
		suite.Nil(b)
	})

	suite.Run("forbidden", func() {
		suite.bindingRepoMock.
			On("RetrieveByID", ctx, int64(1)).
			Once().
			Return(suite.binding(suite.uid, suite.other.ID, 3), nil)

		b, err := suite.uc.Reset(ctx, suite.user, 1)

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(b)
	})

	suite.Run("success", func() {
		suite.bindingRepoMock.
			On("RetrieveByID", ctx, int64(1)).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 3), nil)
		suite.bindingRepoMock.
			On("ResetCount", ctx, int64(1)).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)

		b, err := suite.uc.Reset(ctx, suite.user, 1)

		suite.NoError(err)
		suite.Zero(b.Count)
	})
}

func (suite *BindingUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	suite.Run("anonymous", func() {
		err := suite.uc.Delete(ctx, entity.Principal{}, 1)

		suite.ErrorIs(err, entity.ErrUnauthenticated)
	})

	suite.Run("success", func() {
		suite.bindingRepoMock.
			On("RetrieveByID", ctx, int64(1)).
			Once().
			Return(suite.binding(suite.uid, suite.user.ID, 0), nil)
		suite.bindingRepoMock.
			On("Remove", ctx, int64(1)).
			Once().
			Return(nil)

		err := suite.uc.Delete(ctx, suite.user, 1)

		suite.NoError(err)
	})
}

func TestBindingUseCase(t *testing.T) {
	suite.Run(t, new(BindingUseCaseTestSuite))
}
