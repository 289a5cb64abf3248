package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/mock"
	"github.com/MKhiriev/go-form-guard/internal/store"
	"github.com/MKhiriev/go-form-guard/internal/validators"
	"github.com/MKhiriev/go-form-guard/models"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newSignupForm(t *testing.T) *form.Form {
	t.Helper()

	def, err := form.Builtin(form.DefaultDefinition)
	require.NoError(t, err)

	f, err := form.New(def, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(f.Close)

	return f
}

func fillSignup(t *testing.T, f *form.Form) {
	t.Helper()

	require.NoError(t, f.Set("full_name", "Jane Doe"))
	require.NoError(t, f.Set("email", "jane@example.com"))
	require.NoError(t, f.Set("password", "correct horse"))
	require.NoError(t, f.Set("zipcode", "12345"))
}

const passwordDigest = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5"

// stubSecrets hashes every secret to passwordDigest.
type stubSecrets struct{}

func (stubSecrets) Hash(string) (string, error) { return passwordDigest, nil }

func (stubSecrets) Verify(string, string) (bool, error) { return false, nil }

func newTestSubmissionService(repo store.SubmissionRepository, v validators.Validator, timeout time.Duration) *submissionService {
	svc := NewSubmissionService(repo, v, stubSecrets{}, timeout, logger.Nop()).(*submissionService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSubmit_StoresValidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), 0)

	f := newSignupForm(t)
	fillSignup(t, f)

	var saved models.Submission
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Submission) error {
			saved = s
			return nil
		})

	got, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, saved, got)
	assert.Equal(t, "signup", got.FormName)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.NotEmpty(t, got.SubmissionID)
	assert.Equal(t, "Jane Doe", got.Values["full_name"])
	assert.Equal(t, "12345", got.Values["zipcode"])
	assert.Equal(t, "", got.Values["phone"])
}

func TestSubmit_SecretFieldsAreStoredAsDigests(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	secrets := mock.NewMockSecretHasher(ctrl)
	svc := NewSubmissionService(repo, validators.NewSubmissionValidator(), secrets, 0, logger.Nop())

	f := newSignupForm(t)
	fillSignup(t, f)

	secrets.EXPECT().Hash("correct horse").Return(passwordDigest, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, passwordDigest, got.Values["password"])
	assert.Equal(t, "correct horse", f.Values()["password"])
}

func TestSubmit_HashingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	secrets := mock.NewMockSecretHasher(ctrl)
	svc := NewSubmissionService(repo, validators.NewSubmissionValidator(), secrets, 0, logger.Nop())

	f := newSignupForm(t)
	fillSignup(t, f)

	entropy := errors.New("no entropy")
	secrets.EXPECT().Hash(gomock.Any()).Return("", entropy)

	// no Save expected
	_, err := svc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, entropy)
	assert.Contains(t, err.Error(), `"password"`)
}

func TestSubmit_InvalidFormIsRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), 0)

	f := newSignupForm(t)
	require.NoError(t, f.Set("full_name", "Jane Doe"))

	// no Save expected
	_, err := svc.Submit(context.Background(), f)
	require.ErrorIs(t, err, ErrFormInvalid)
	assert.Contains(t, err.Error(), "email, password")
}

func TestSubmit_NilForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestSubmissionService(mock.NewMockSubmissionRepository(ctrl), validators.NewSubmissionValidator(), 0)

	_, err := svc.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFormProvided)
}

func TestSubmit_ValidatorRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	v := mock.NewMockValidator(ctrl)
	svc := newTestSubmissionService(repo, v, 0)

	f := newSignupForm(t)
	fillSignup(t, f)

	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validators.ErrEmptyValues)

	_, err := svc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.ErrorIs(t, err, validators.ErrEmptyValues)
}

func TestSubmit_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), 0)

	f := newSignupForm(t)
	fillSignup(t, f)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrSubmissionExists)

	_, err := svc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, store.ErrSubmissionExists)
}

func TestSubmit_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), time.Second)

	f := newSignupForm(t)
	fillSignup(t, f)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.Submission) error {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
			return nil
		})

	_, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)
}

func TestSubmit_DoesNotResetTheForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), 0)

	f := newSignupForm(t)
	fillSignup(t, f)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)

	assert.True(t, f.Valid().Get())
	assert.Equal(t, "Jane Doe", f.Values()["full_name"])
}

func TestRecent_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	svc := newTestSubmissionService(repo, validators.NewSubmissionValidator(), 0)

	want := []models.Submission{{SubmissionID: "b"}, {SubmissionID: "a"}}
	repo.EXPECT().ListByForm(gomock.Any(), "signup", 5).Return(want, nil)

	got, err := svc.Recent(context.Background(), "signup", 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoggingWrapper_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSubmissionService(ctrl)
	svc := NewSubmissionLoggingService(logger.Nop()).Wrap(inner)

	f := newSignupForm(t)
	want := models.Submission{SubmissionID: "id-1"}

	inner.EXPECT().Submit(gomock.Any(), f).Return(want, nil)
	inner.EXPECT().Submit(gomock.Any(), f).Return(models.Submission{}, ErrFormInvalid)
	inner.EXPECT().Recent(gomock.Any(), "signup", 3).Return(nil, errors.New("db down"))

	got, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Submit(context.Background(), f)
	assert.ErrorIs(t, err, ErrFormInvalid)

	_, err = svc.Recent(context.Background(), "signup", 3)
	assert.EqualError(t, err, "db down")
}
