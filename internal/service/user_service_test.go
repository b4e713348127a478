package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func adminRequest() CreateUserRequest {
	return CreateUserRequest{
		Username: "admin",
		Password: "secret123",
		Role:     models.RoleAdmin,
		FullName: "Ada Admin",
		Email:    "admin@school.test",
	}
}

func TestUserServiceHashesPasswords(t *testing.T) {
	f := newFixture(t)
	f.users.hashCost = bcrypt.MinCost
	ctx := context.Background()

	user, err := f.users.Create(ctx, adminRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	updated, err := f.users.Update(ctx, user.ID, UpdateUserRequest{Password: strPtr("changed456")})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("changed456")))
	assert.Equal(t, "Ada Admin", updated.FullName)

	activities, err := f.activities.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "updated user", activities[0].Action)
	assert.Equal(t, "Ada Admin (admin)", activities[0].Details)
}

func TestUserServiceRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.users.hashCost = bcrypt.MinCost
	ctx := context.Background()

	_, err := f.users.Create(ctx, adminRequest())
	require.NoError(t, err)

	req := adminRequest()
	req.Username = "second"
	_, err = f.users.Create(ctx, req)
	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)
}

func TestTeacherServiceLinksAndUnlinksAccount(t *testing.T) {
	f := newFixture(t)
	f.users.hashCost = bcrypt.MinCost
	ctx := context.Background()

	missing := int64(42)
	req := CreateTeacherRequest{
		TeacherID: "TCH001",
		Name:      "Sam Smith",
		Email:     "sam@school.test",
		JoinDate:  mustDate(t, "2019-08-01"),
		Subjects:  []string{"Mathematics"},
		UserID:    &missing,
	}
	_, err := f.teachers.Create(ctx, req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "userId", appErr.Details[0].Field)

	user, err := f.users.Create(ctx, adminRequest())
	require.NoError(t, err)
	req.UserID = &user.ID
	teacher, err := f.teachers.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, teacher.UserID)

	unlink := int64(0)
	updated, err := f.teachers.Update(ctx, teacher.ID, UpdateTeacherRequest{UserID: &unlink})
	require.NoError(t, err)
	assert.Nil(t, updated.UserID)
	assert.Equal(t, []string{"Mathematics"}, []string(updated.Subjects))
}

func TestClassServiceRequiresKnownTeacher(t *testing.T) {
	f := newFixture(t)

	req := classRequest("SCI-9B")
	teacherID := int64(9)
	req.TeacherID = &teacherID
	_, err := f.classes.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	classes, err := f.classes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, classes)
}
