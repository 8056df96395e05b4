package whatsapp

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type fakeWhatsappRepo struct {
	accounts map[uuid.UUID]*model.WhatsappAccount
}

func newFakeWhatsappRepo() *fakeWhatsappRepo {
	return &fakeWhatsappRepo{accounts: make(map[uuid.UUID]*model.WhatsappAccount)}
}

func (f *fakeWhatsappRepo) Create(ctx context.Context, account *model.WhatsappAccount) error {
	for _, a := range f.accounts {
		if a.Name == account.Name {
			return apperrors.Conflict("whatsapp account name already exists")
		}
	}
	account.ID = uuid.New()
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeWhatsappRepo) List(ctx context.Context) ([]*model.WhatsappAccount, error) {
	var out []*model.WhatsappAccount
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeWhatsappRepo) Get(ctx context.Context, id uuid.UUID) (*model.WhatsappAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.NotFound("whatsapp account")
	}
	return a, nil
}

func (f *fakeWhatsappRepo) Update(ctx context.Context, account *model.WhatsappAccount) error {
	if _, ok := f.accounts[account.ID]; !ok {
		return apperrors.NotFound("whatsapp account")
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeWhatsappRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.accounts[id]; !ok {
		return apperrors.NotFound("whatsapp account")
	}
	delete(f.accounts, id)
	return nil
}

func TestCreateWhatsappAccount(t *testing.T) {
	svc := NewService(newFakeWhatsappRepo())

	created, err := svc.Create(context.Background(), &model.CreateWhatsappRequest{
		Name:   "CS Utama",
		Number: "+6281200001111",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "CS Utama", created.Name)
}

func TestCreateWhatsappDuplicateName(t *testing.T) {
	svc := NewService(newFakeWhatsappRepo())

	req := &model.CreateWhatsappRequest{Name: "CS Utama", Number: "+62812"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUpdateWhatsappPartial(t *testing.T) {
	repo := newFakeWhatsappRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &model.CreateWhatsappRequest{
		Name:   "CS Utama",
		Number: "+62812",
	})
	require.NoError(t, err)

	number := "+62899"
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateWhatsappRequest{Number: &number})
	require.NoError(t, err)
	assert.Equal(t, "CS Utama", updated.Name)
	assert.Equal(t, "+62899", updated.Number)
}

func TestUpdateWhatsappNoFields(t *testing.T) {
	svc := NewService(newFakeWhatsappRepo())

	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateWhatsappRequest{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteWhatsappUnknown(t *testing.T) {
	svc := NewService(newFakeWhatsappRepo())

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
