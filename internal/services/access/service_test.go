package access

import (
	"errors"
	"testing"
)

type stubMemberClient struct {
	status string
	err    error
	calls  int
}

func (c *stubMemberClient) MemberStatus(_, _ int64) (string, error) {
	c.calls++
	return c.status, c.err
}

func TestIsAdminByStatus(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"creator", true},
		{"administrator", true},
		{"member", false},
		{"restricted", false},
		{"left", false},
		{"kicked", false},
	}

	for _, tc := range cases {
		svc := NewService(&stubMemberClient{status: tc.status}, nil)
		if got := svc.IsAdmin(-100200, 42); got != tc.want {
			t.Fatalf("status %q: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestIsAdminFailsClosed(t *testing.T) {
	svc := NewService(&stubMemberClient{err: errors.New("user not found")}, nil)
	if svc.IsAdmin(-100200, 42) {
		t.Fatal("expected lookup failure to deny access")
	}
}

func TestIsAdminQueriesFreshEveryCall(t *testing.T) {
	client := &stubMemberClient{status: "member"}
	svc := NewService(client, nil)

	svc.IsAdmin(-100200, 42)
	client.status = "administrator"
	if !svc.IsAdmin(-100200, 42) {
		t.Fatal("expected promoted role to take effect immediately")
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 uncached lookups, got %d", client.calls)
	}
}
