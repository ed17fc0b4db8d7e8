package tenant

import (
	"context"
	"testing"

	coredatabase "github.com/KNset/blog-bot/core/database"
	"github.com/KNset/blog-bot/internal/storage"
)

type fakeRegistry struct {
	bots map[string]storage.ChildBot
}

func (f *fakeRegistry) RegisterChildBot(_ context.Context, token string, adminID int64, dbPath string) (bool, error) {
	if _, ok := f.bots[token]; ok {
		return false, nil
	}
	if f.bots == nil {
		f.bots = make(map[string]storage.ChildBot)
	}
	f.bots[token] = storage.ChildBot{Token: token, AdminID: adminID, DBPath: dbPath}
	return true, nil
}

func (f *fakeRegistry) GetChildBotByToken(_ context.Context, token string) (storage.ChildBot, error) {
	b, ok := f.bots[token]
	if !ok {
		return storage.ChildBot{}, storage.ErrNotFound
	}
	return b, nil
}

func newTestProvisioner(t *testing.T) (*Provisioner, *fakeRegistry, *[]string) {
	t.Helper()
	reg := &fakeRegistry{}
	migrated := []string{}
	p := New(t.TempDir(), reg, coredatabase.Config{MaxConnections: 1})
	p.connect = func(coredatabase.Config) error { return nil }
	p.migrate = func(cfg coredatabase.Config) error {
		migrated = append(migrated, cfg.Path)
		return nil
	}
	return p, reg, &migrated
}

func TestProvisionCreatesAndRegisters(t *testing.T) {
	p, reg, migrated := newTestProvisioner(t)

	bot, created, err := p.Provision(context.Background(), "123456:secret", 42)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if !created {
		t.Fatal("first provision must create")
	}
	if bot.AdminID != 42 {
		t.Fatalf("owner = %d", bot.AdminID)
	}
	if len(*migrated) != 1 || (*migrated)[0] != bot.DBPath {
		t.Fatalf("migrated paths = %v, bot path = %s", *migrated, bot.DBPath)
	}
	if _, ok := reg.bots["123456:secret"]; !ok {
		t.Fatal("registration missing")
	}
}

func TestProvisionDuplicateToken(t *testing.T) {
	p, _, migrated := newTestProvisioner(t)
	ctx := context.Background()

	first, _, err := p.Provision(ctx, "123456:secret", 42)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	second, created, err := p.Provision(ctx, "123456:secret", 42)
	if err != nil {
		t.Fatalf("second provision: %v", err)
	}
	if created {
		t.Fatal("duplicate token must not create")
	}
	if second.DBPath != first.DBPath {
		t.Fatalf("registration changed: %s vs %s", second.DBPath, first.DBPath)
	}
	if len(*migrated) != 1 {
		t.Fatalf("migrations ran %d times", len(*migrated))
	}
}

func TestTenantName(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"123456:AAE-secret", "123456"},
		{"plain", "plain"},
		{"we/ird", "we_ird"},
		{":", "bot"},
	}
	for _, tc := range cases {
		if got := tenantName(tc.token); got != tc.want {
			t.Fatalf("tenantName(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}
