package usecase

import (
	"context"
	"errors"
	"testing"

	"orcafacil/internal/domain/entities"
	mock_interfaces "orcafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientStore_CreateClient(t *testing.T) {
	t.Run("success appends with storage-assigned id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIStorageService(ctrl)
		store := NewClientStore(storage)

		storage.EXPECT().SaveClient(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Phone != "(11) 99999-8888" {
					t.Fatalf("phone not normalized: %q", c.Phone)
				}
				c.ID = 5
				return c, nil
			},
		)

		saved, err := store.CreateClient(context.Background(), entities.Client{
			Name: "Acme", Company: "Acme Ltda", Phone: "11999998888",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != 5 {
			t.Fatalf("expected id 5, got %d", saved.ID)
		}
		if got := store.Clients(); len(got) != 1 || got[0].ID != 5 {
			t.Fatalf("cache not appended: %+v", got)
		}
		if store.Loading() || store.Err() != "" {
			t.Fatal("expected clean state after success")
		}
	})

	t.Run("failure leaves cache untouched and propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIStorageService(ctrl)
		store := NewClientStore(storage)

		boom := errors.New("storage down")
		storage.EXPECT().SaveClient(gomock.Any(), gomock.Any()).Return(entities.Client{}, boom)

		_, err := store.CreateClient(context.Background(), entities.Client{Name: "Acme"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected propagated error, got %v", err)
		}
		if len(store.Clients()) != 0 {
			t.Fatal("cache mutated on failure")
		}
		if store.Err() == "" {
			t.Fatal("expected display error")
		}
		if store.Loading() {
			t.Fatal("loading stuck true")
		}
	})
}

func TestClientStore_FetchAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mock_interfaces.NewMockIStorageService(ctrl)
	store := NewClientStore(storage)

	all := []entities.Client{
		{ID: 1, Name: "Maria Silva", Company: "Construtora Alfa"},
		{ID: 2, Name: "João Souza", Company: "Beta Engenharia"},
	}

	storage.EXPECT().GetClients(gomock.Any()).Return(all, nil)
	clients, err := store.FetchClients(context.Background())
	if err != nil || len(clients) != 2 {
		t.Fatalf("fetch: %v %v", clients, err)
	}

	if c, ok := store.GetClientByID(2); !ok || c.Name != "João Souza" {
		t.Fatalf("cache lookup failed: %+v %v", c, ok)
	}

	storage.EXPECT().GetClients(gomock.Any()).Return(all, nil)
	matches, err := store.SearchClients(context.Background(), "alfa")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].ID != 1 {
		t.Fatalf("search by company failed: %+v", matches)
	}
}

func TestClientStore_UpdateClient(t *testing.T) {
	t.Run("missing id is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIStorageService(ctrl)
		store := NewClientStore(storage)

		storage.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil)

		updated, err := store.UpdateClient(context.Background(), entities.Client{ID: 9, Name: "X", Phone: "11999998888"})
		if err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
		if updated.ID != 0 {
			t.Fatalf("expected zero client, got %+v", updated)
		}
	})

	t.Run("replaces cached entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIStorageService(ctrl)
		store := NewClientStore(storage)

		storage.EXPECT().GetClients(gomock.Any()).Return([]entities.Client{{ID: 1, Name: "Old"}}, nil)
		if _, err := store.FetchClients(context.Background()); err != nil {
			t.Fatal(err)
		}

		storage.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
		)

		if _, err := store.UpdateClient(context.Background(), entities.Client{ID: 1, Name: "New", Phone: "11999998888"}); err != nil {
			t.Fatal(err)
		}
		if got := store.Clients(); got[0].Name != "New" {
			t.Fatalf("cache not replaced: %+v", got)
		}
	})
}

func TestClientStore_DeleteClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mock_interfaces.NewMockIStorageService(ctrl)
	store := NewClientStore(storage)

	storage.EXPECT().GetClients(gomock.Any()).Return([]entities.Client{{ID: 1}, {ID: 2}}, nil)
	if _, err := store.FetchClients(context.Background()); err != nil {
		t.Fatal(err)
	}

	storage.EXPECT().DeleteClient(gomock.Any(), 2).Return(nil)
	if err := store.DeleteClient(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if got := store.Clients(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("cache not spliced: %+v", got)
	}
}
