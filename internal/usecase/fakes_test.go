package usecase

import (
	"context"
	"time"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/notifier"

	"github.com/google/uuid"
)

// --- fakes ---

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	createErr error
	findErr   error
	updateErr error
	deleteErr error

	deleted []uuid.UUID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.IsVerified || user.VerificationToken == nil || user.VerificationExpires == nil {
			continue
		}
		if *user.VerificationToken == token && user.VerificationExpires.After(time.Now()) {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.ResetToken == nil || user.ResetExpires == nil {
			continue
		}
		if *user.ResetToken == token && user.ResetExpires.After(time.Now()) {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product

	err error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []uuid.UUID
	for _, id := range ids {
		if _, ok := f.products[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Product
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeListRepo struct {
	items map[repository.ListKind]map[uuid.UUID]map[uuid.UUID]bool

	err error
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{items: make(map[repository.ListKind]map[uuid.UUID]map[uuid.UUID]bool)}
}

func (f *fakeListRepo) set(kind repository.ListKind, userID uuid.UUID) map[uuid.UUID]bool {
	if f.items[kind] == nil {
		f.items[kind] = make(map[uuid.UUID]map[uuid.UUID]bool)
	}
	if f.items[kind][userID] == nil {
		f.items[kind][userID] = make(map[uuid.UUID]bool)
	}
	return f.items[kind][userID]
}

func (f *fakeListRepo) Add(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	set := f.set(kind, userID)
	if set[productID] {
		return false, nil
	}
	set[productID] = true
	return true, nil
}

func (f *fakeListRepo) AddMany(ctx context.Context, kind repository.ListKind, userID uuid.UUID, productIDs []uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	set := f.set(kind, userID)
	for _, id := range productIDs {
		set[id] = true
	}
	return nil
}

func (f *fakeListRepo) Remove(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.set(kind, userID), productID)
	return nil
}

func (f *fakeListRepo) Clear(ctx context.Context, kind repository.ListKind, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if f.items[kind] != nil {
		delete(f.items[kind], userID)
	}
	return nil
}

func (f *fakeListRepo) ProductIDs(ctx context.Context, kind repository.ListKind, userID uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []uuid.UUID
	for id := range f.set(kind, userID) {
		out = append(out, id)
	}
	return out, nil
}

type fakeSender struct {
	sent []notifier.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg notifier.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
