package roles

import (
	"context"
	"errors"
	"testing"
)

type fakeAdminSet struct {
	members map[int64]bool
	err     error
}

func (f *fakeAdminSet) IsAdmin(_ context.Context, userID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[userID], nil
}

func TestIsAdmin(t *testing.T) {
	r := NewResolver(100, &fakeAdminSet{members: map[int64]bool{200: true}})

	cases := []struct {
		name   string
		userID int64
		want   bool
	}{
		{"super admin without stored row", 100, true},
		{"stored admin", 200, true},
		{"anonymous", 300, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.IsAdmin(tc.userID); got != tc.want {
				t.Fatalf("IsAdmin(%d) = %v, want %v", tc.userID, got, tc.want)
			}
		})
	}
}

func TestIsSuperAdmin(t *testing.T) {
	r := NewResolver(100, &fakeAdminSet{members: map[int64]bool{200: true}})
	if !r.IsSuperAdmin(100) {
		t.Fatal("configured identity must be super admin")
	}
	if r.IsSuperAdmin(200) {
		t.Fatal("stored admin must not be super admin")
	}
}

func TestStorageFaultDeniesAccess(t *testing.T) {
	r := NewResolver(100, &fakeAdminSet{err: errors.New("disk gone")})
	if r.IsAdmin(200) {
		t.Fatal("fault must deny, not grant")
	}
	if !r.IsAdmin(100) {
		t.Fatal("super admin must survive storage faults")
	}
}
