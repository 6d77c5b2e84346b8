package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/pkg/identifier"
)

type fakeStudentRepo struct {
	students []models.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	student.ID = primitive.NewObjectID()
	f.students = append(f.students, *student)
	return student.ID, nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].ID == id {
			return &f.students[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].Username == username {
			return &f.students[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetAll(ctx context.Context, classGrade *models.ClassGrade) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.students {
		if classGrade != nil && s.ClassGrade != *classGrade {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for i := range f.students {
		if f.students[i].ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func createStudentRequest() *models.CreateStudentRequest {
	return &models.CreateStudentRequest{
		Name:       "Alice Carter",
		Username:   "alice",
		Password:   "sup3rsecret",
		ClassGrade: "9",
	}
}

func TestStudentServiceCreate(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo, zerolog.Nop())

	response, err := svc.Create(context.Background(), createStudentRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, models.ClassGrade(9), response.ClassGrade)

	require.Len(t, repo.students, 1)
	stored := repo.students[0]
	assert.NotEqual(t, "sup3rsecret", stored.Password, "password must never be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("sup3rsecret")))

	_, err = identifier.Decode(response.ID)
	require.NoError(t, err)

	grade := models.ClassGrade(9)
	views, err := svc.List(context.Background(), &grade)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, response.ID, views[0].ID)
}

func TestStudentServiceCreateDuplicateUsername(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), createStudentRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createStudentRequest())
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)
	assert.Len(t, repo.students, 1)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{}, zerolog.Nop())

	tests := []struct {
		name      string
		mutate    func(*models.CreateStudentRequest)
		wantField string
	}{
		{name: "missing name", mutate: func(r *models.CreateStudentRequest) { r.Name = "" }, wantField: "name"},
		{name: "missing username", mutate: func(r *models.CreateStudentRequest) { r.Username = "" }, wantField: "username"},
		{name: "missing password", mutate: func(r *models.CreateStudentRequest) { r.Password = "" }, wantField: "password"},
		{name: "missing class_grade", mutate: func(r *models.CreateStudentRequest) { r.ClassGrade = "" }, wantField: "class_grade"},
		{name: "grade zero", mutate: func(r *models.CreateStudentRequest) { r.ClassGrade = "0" }, wantField: "class_grade"},
		{name: "grade thirteen", mutate: func(r *models.CreateStudentRequest) { r.ClassGrade = "13" }, wantField: "class_grade"},
		{name: "grade not a number", mutate: func(r *models.CreateStudentRequest) { r.ClassGrade = "ninth" }, wantField: "class_grade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createStudentRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestStudentServiceLogin(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), createStudentRequest())
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		profile, err := svc.Login(context.Background(), &models.StudentLoginRequest{
			Username: "alice",
			Password: "sup3rsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
		assert.Equal(t, models.ClassGrade(9), profile.ClassGrade)
	})

	// Unknown usernames and wrong passwords must be indistinguishable.
	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.StudentLoginRequest{
			Username: "bob",
			Password: "sup3rsecret",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.StudentLoginRequest{
			Username: "alice",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.StudentLoginRequest{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestStudentServiceDelete(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo, zerolog.Nop())

	response, err := svc.Create(context.Background(), createStudentRequest())
	require.NoError(t, err)

	t.Run("malformed id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), "123"), ErrInvalidIdentifier)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), primitive.NewObjectID().Hex()), ErrNotFound)
	})

	t.Run("existing", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), response.ID))
		assert.Empty(t, repo.students)
	})
}

func TestStudentServiceProfile(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo, zerolog.Nop())

	response, err := svc.Create(context.Background(), createStudentRequest())
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), response.ID)
	require.NoError(t, err)
	assert.Equal(t, response.ID, profile.ID)
	assert.Equal(t, "Alice Carter", profile.Name)

	_, err = svc.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Profile(context.Background(), "zz")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
