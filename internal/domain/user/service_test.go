package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[int64]*User
	nextID int64
	gets   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, existing := range r.users {
		if existing.Email == email {
			found := *existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	r.gets++
	existing, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *existing
	return &found, nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID int64) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func (fakeTokens) Parse(token string) (int64, error) {
	raw, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return 0, errors.New("malformed")
	}
	return strconv.ParseInt(raw, 10, 64)
}

type mapCache struct {
	items map[int64]*User
}

func (c *mapCache) Get(id int64) (*User, bool) {
	u, ok := c.items[id]
	return u, ok
}

func (c *mapCache) Set(id int64, u *User, _ time.Duration) {
	c.items[id] = u
}

func newTestService(repo Repository) *Service {
	return NewService(repo, fakeTokens{}, Options{BcryptCost: bcrypt.MinCost})
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "pw",
		Role:     RoleParent,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.User.ID == 0 || session.User.Name != "A" || session.User.Email != "a@x.com" || session.User.Role != RoleParent {
		t.Fatalf("unexpected user %+v", session.User)
	}
	if session.Token != fmt.Sprintf("token-%d", session.User.ID) {
		t.Fatalf("unexpected token %q", session.Token)
	}

	stored := repo.users[session.User.ID]
	if stored.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("expected stored hash to match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	input := RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: RoleParent}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "pw", Role: RoleHelper}, ErrNameRequired},
		{"missing email", RegisterInput{Name: "A", Password: "pw", Role: RoleHelper}, ErrEmailRequired},
		{"missing password", RegisterInput{Name: "A", Email: "a@x.com", Role: RoleHelper}, ErrPasswordRequired},
		{"bad role", RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: "admin"}, ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newFakeUserRepo())
			_, err := svc.Register(context.Background(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoginAfterRegister(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	registered, err := svc.Register(context.Background(), RegisterInput{Name: "H", Email: "h@x.com", Password: "secret", Role: RoleHelper})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	session, err := svc.Login(context.Background(), "h@x.com", "secret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.User != registered.User {
		t.Fatalf("expected %+v, got %+v", registered.User, session.User)
	}

	userID, err := svc.Authenticate(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if userID != registered.User.ID {
		t.Fatalf("expected token for user %d, got %d", registered.User.ID, userID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	if _, err := svc.Register(context.Background(), RegisterInput{Name: "H", Email: "h@x.com", Password: "secret", Role: RoleHelper}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), "h@x.com", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	_, err := svc.Login(context.Background(), "ghost@x.com", "pw")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	for _, token := range []string{"", "   ", "garbage"} {
		if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyUsesCache(t *testing.T) {
	repo := newFakeUserRepo()
	cache := &mapCache{items: make(map[int64]*User)}
	svc := NewService(repo, fakeTokens{}, Options{BcryptCost: bcrypt.MinCost, Cache: cache, CacheTTL: time.Minute})

	session, err := svc.Register(context.Background(), RegisterInput{Name: "P", Email: "p@x.com", Password: "pw", Role: RoleParent})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Verify(context.Background(), session.User.ID); err != nil {
			t.Fatalf("verify: %v", err)
		}
	}
	if repo.gets != 1 {
		t.Fatalf("expected a single repository lookup, got %d", repo.gets)
	}
}

func TestVerifyMissingUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	_, err := svc.Verify(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMeReturnsPublicUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	session, err := svc.Register(context.Background(), RegisterInput{Name: "P", Email: "p@x.com", Password: "pw", Role: RoleParent})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	me, err := svc.Me(context.Background(), session.User.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me != session.User {
		t.Fatalf("expected %+v, got %+v", session.User, me)
	}
}
