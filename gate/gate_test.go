package gate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobtalk/domain"
	"jobtalk/errors"
	gatepkg "jobtalk/gate"
	"jobtalk/mocks"
)

func TestGate_Authorize_Initiators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messages := mocks.NewMockIMessageRepository(ctrl)
	applications := mocks.NewMockApplicationDirectory(ctrl)
	gate := gatepkg.New(messages, applications)
	ctx := context.Background()

	t.Run("should let an employer initiate without any prior message", func(t *testing.T) {
		// No repository call expected at all.
		sender := domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}
		require.NoError(t, gate.Authorize(ctx, sender, "cand-1", nil))
	})

	t.Run("should let an admin initiate", func(t *testing.T) {
		sender := domain.Identity{UserID: "adm-1", Role: domain.RoleAdmin}
		jobID := "job-1"
		require.NoError(t, gate.Authorize(ctx, sender, "cand-1", &jobID))
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		sender := domain.Identity{UserID: "x", Role: domain.Role("moderator")}
		require.Error(t, gate.Authorize(ctx, sender, "cand-1", nil))
	})
}

func TestGate_Authorize_ReplyOnly(t *testing.T) {
	ctx := context.Background()
	sender := domain.Identity{UserID: "cand-1", Role: domain.RoleJobSeeker}
	jobID := "job-1"

	t.Run("should deny when the counterpart never wrote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messages := mocks.NewMockIMessageRepository(ctrl)
		applications := mocks.NewMockApplicationDirectory(ctrl)
		gate := gatepkg.New(messages, applications)

		// The prior-message check looks at the opposite direction.
		messages.EXPECT().
			HasMessageFrom("emp-1", "cand-1", &jobID).
			Return(false, nil).
			Times(1)

		err := gate.Authorize(ctx, sender, "emp-1", &jobID)
		require.ErrorIs(t, err, errors.ErrReplyOnly)
	})

	t.Run("should deny a job-scoped reply without an application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messages := mocks.NewMockIMessageRepository(ctrl)
		applications := mocks.NewMockApplicationDirectory(ctrl)
		gate := gatepkg.New(messages, applications)

		messages.EXPECT().
			HasMessageFrom("emp-1", "cand-1", &jobID).
			Return(true, nil).
			Times(1)
		applications.EXPECT().
			Exists(ctx, jobID, "cand-1").
			Return(false, nil).
			Times(1)

		err := gate.Authorize(ctx, sender, "emp-1", &jobID)
		require.ErrorIs(t, err, errors.ErrNoApplication)
	})

	t.Run("should allow a job-scoped reply backed by an application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messages := mocks.NewMockIMessageRepository(ctrl)
		applications := mocks.NewMockApplicationDirectory(ctrl)
		gate := gatepkg.New(messages, applications)

		messages.EXPECT().
			HasMessageFrom("emp-1", "cand-1", &jobID).
			Return(true, nil).
			Times(1)
		applications.EXPECT().
			Exists(ctx, jobID, "cand-1").
			Return(true, nil).
			Times(1)

		require.NoError(t, gate.Authorize(ctx, sender, "emp-1", &jobID))
	})

	t.Run("should allow a job-independent reply without an application check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messages := mocks.NewMockIMessageRepository(ctrl)
		applications := mocks.NewMockApplicationDirectory(ctrl)
		gate := gatepkg.New(messages, applications)

		messages.EXPECT().
			HasMessageFrom("emp-1", "cand-1", gomock.Nil()).
			Return(true, nil).
			Times(1)
		applications.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, gate.Authorize(ctx, sender, "emp-1", nil))
	})

	t.Run("should not unlock a different job scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messages := mocks.NewMockIMessageRepository(ctrl)
		applications := mocks.NewMockApplicationDirectory(ctrl)
		gate := gatepkg.New(messages, applications)

		otherJob := "job-2"
		messages.EXPECT().
			HasMessageFrom("emp-1", "cand-1", &otherJob).
			Return(false, nil).
			Times(1)

		err := gate.Authorize(ctx, sender, "emp-1", &otherJob)
		require.ErrorIs(t, err, errors.ErrReplyOnly)
	})
}
