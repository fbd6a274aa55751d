package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

func TestUserServiceReads(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	users := NewUserService(f.store, f.files, zerolog.Nop())

	student, err := f.svc.RegisterStudent(ctx, studentRequest("ada@example.com"), nil, nil)
	require.NoError(t, err)

	other := studentRequest("bob@example.com")
	other.FirstName, other.LastName = "Bob", "Builder"
	_, err = f.svc.RegisterStudent(ctx, other, nil, nil)
	require.NoError(t, err)

	mentor, err := f.svc.RegisterMentor(ctx, &dto.RegisterMentorRequest{
		Email:                "grace@example.com",
		Password:             "cobol-rules",
		ConfirmPassword:      "cobol-rules",
		Name:                 "Grace Hopper",
		TotalExperienceYears: ptr(12),
		Technologies:         []string{"COBOL", "Go"},
	}, nil)
	require.NoError(t, err)

	t.Run("me includes the student profile", func(t *testing.T) {
		me, err := users.GetMe(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", me.User.Email)
		require.NotNil(t, me.StudentProfile)
		assert.Equal(t, "Ada", me.StudentProfile.FirstName)
		assert.Equal(t, "1995-12-10", *me.StudentProfile.DOB)
		assert.Nil(t, me.MentorProfile)
	})

	t.Run("me includes the mentor profile and technologies", func(t *testing.T) {
		me, err := users.GetUser(ctx, mentor.ID)
		require.NoError(t, err)
		require.NotNil(t, me.MentorProfile)
		assert.ElementsMatch(t, []string{"COBOL", "Go"}, me.MentorProfile.Technologies)
	})

	t.Run("student search", func(t *testing.T) {
		list, err := users.ListStudents(ctx, dto.StudentListQuery{Limit: 20, Search: "build"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Bob", list[0].FirstName)

		all, err := users.ListStudents(ctx, dto.StudentListQuery{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, all, 1)

		got, err := users.GetStudent(ctx, list[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.User.Email)
	})

	t.Run("mentor filters", func(t *testing.T) {
		list, err := users.ListMentors(ctx, dto.MentorListQuery{Limit: 20, Technology: "cobol", MinYears: ptr(10)})
		require.NoError(t, err)
		require.Len(t, list, 1)

		got, err := users.GetMentor(ctx, list[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", got.Name)

		none, err := users.ListMentors(ctx, dto.MentorListQuery{Limit: 20, MinYears: ptr(20)})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("missing profiles", func(t *testing.T) {
		_, err := users.GetStudent(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		_, err = users.GetMentor(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		_, err = users.GetMe(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("student details", func(t *testing.T) {
		u, err := users.StudentDetails(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, student, u)
	})
}

func TestListMentorsMatchesWholeTechnologyName(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	users := NewUserService(f.store, f.files, zerolog.Nop())

	register := func(email, name string, techs ...string) {
		_, err := f.svc.RegisterMentor(ctx, &dto.RegisterMentorRequest{
			Email:           email,
			Password:        "password123",
			ConfirmPassword: "password123",
			Name:            name,
			Technologies:    techs,
		}, nil)
		require.NoError(t, err)
	}
	register("py@example.com", "Pythonista", "Django", "MongoDB")
	register("gopher@example.com", "Gopher", "Go")

	tests := []struct {
		technology string
		want       []string
	}{
		{"go", []string{"Gopher"}},
		{" GO ", []string{"Gopher"}},
		{"django", []string{"Pythonista"}},
		{"jango", nil},
		{"mongo", nil},
	}
	for _, tt := range tests {
		t.Run(tt.technology, func(t *testing.T) {
			list, err := users.ListMentors(ctx, dto.MentorListQuery{Limit: 20, Technology: tt.technology})
			require.NoError(t, err)
			var names []string
			for _, m := range list {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades and removes uploads", func(t *testing.T) {
		f := newAuthFixture(t)
		users := NewUserService(f.store, f.files, zerolog.Nop())
		admin := f.seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin, true)

		student, err := f.svc.RegisterStudent(ctx, studentRequest("ada@example.com"),
			&multipart.FileHeader{Filename: "me.png"}, nil)
		require.NoError(t, err)
		_, _, err = f.svc.RequestPasswordReset(ctx, "ada@example.com")
		require.NoError(t, err)

		require.NoError(t, users.DeleteUser(ctx, admin.ID, student.ID))

		_, err = f.store.Users().GetByID(ctx, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Zero(t, f.store.ResetTokenCount())
		list, err := users.ListStudents(ctx, dto.StudentListQuery{Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.Equal(t, []string{"/uploads/student/photos/me.png"}, f.files.deleted)
	})

	t.Run("self delete is forbidden", func(t *testing.T) {
		f := newAuthFixture(t)
		users := NewUserService(f.store, f.files, zerolog.Nop())
		admin := f.seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin, true)

		err := users.DeleteUser(ctx, admin.ID, admin.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("hire records block deletion", func(t *testing.T) {
		f := newAuthFixture(t)
		users := NewUserService(f.store, f.files, zerolog.Nop())
		admin := f.seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin, true)
		student := f.seedUser(t, "ada@example.com", "pass-word", models.RoleStudent, true)

		require.NoError(t, f.store.Hires().Create(ctx, &models.StudentsHired{
			UserID: student.ID, Fullname: "Ada", Email: "ada@example.com", HiredCompany: "Acme",
		}))

		err := users.DeleteUser(ctx, admin.ID, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		_, err = f.store.Users().GetByID(ctx, student.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		users := NewUserService(f.store, f.files, zerolog.Nop())
		err := users.DeleteUser(ctx, 1, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
