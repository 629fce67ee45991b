package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/HrisheekeshS/Bill-Split/internal/auth"
	"github.com/HrisheekeshS/Bill-Split/internal/middleware"
	"github.com/HrisheekeshS/Bill-Split/internal/storage/sqlstore"
	"github.com/HrisheekeshS/Bill-Split/pkg/rpc"
)

const (
	alice = "alice@example.com"
	bob   = "bob@example.com"
	carol = "carol@example.com"
	dave  = "dave@example.com"
)

type testEnv struct {
	client rpc.GroupServiceClient
	jwt    *auth.JWTManager
	store  *sqlstore.Store
}

// setupTestServer starts the GroupService behind the real auth interceptor on a
// temp SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	path, handler := rpc.NewGroupServiceHandler(
		NewGroupService(store),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		client: rpc.NewGroupServiceClient(http.DefaultClient, server.URL),
		jwt:    jwtManager,
		store:  store,
	}
}

// as wraps msg in a request carrying a bearer token for email.
func as[T any](t *testing.T, env *testEnv, email string, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := env.jwt.Generate(email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func createGroup(t *testing.T, env *testEnv, creator string, members ...string) *rpc.Group {
	t.Helper()
	resp, err := env.client.CreateGroup(context.Background(), as(t, env, creator, &rpc.CreateGroupRequest{
		Name:         "Trip",
		MemberEmails: members,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.client.CreateGroup(context.Background(), as(t, env, alice, &rpc.CreateGroupRequest{
		Name:         "  Roommates ",
		MemberEmails: []string{bob, " carol@example.com", bob, ""},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group := resp.Msg.Group
	if group == nil {
		t.Fatal("expected group in response")
	}
	if group.ID == "" {
		t.Error("expected group ID to be generated")
	}
	if group.Name != "Roommates" {
		t.Errorf("expected name Roommates, got %q", group.Name)
	}
	if group.CreatedBy != alice {
		t.Errorf("expected created_by %s, got %s", alice, group.CreatedBy)
	}
	want := []string{alice, bob, carol}
	if len(group.MemberEmails) != len(want) {
		t.Fatalf("expected members %v, got %v", want, group.MemberEmails)
	}
	for i := range want {
		if group.MemberEmails[i] != want[i] {
			t.Errorf("member %d: expected %s, got %s", i, want[i], group.MemberEmails[i])
		}
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.client.CreateGroup(context.Background(), as(t, env, alice, &rpc.CreateGroupRequest{Name: "   "}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = env.client.CreateGroup(context.Background(), connect.NewRequest(&rpc.CreateGroupRequest{Name: "No token"}))
	expectCode(t, err, connect.CodeUnauthenticated)
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, alice, bob)

	t.Run("member sees ledger", func(t *testing.T) {
		_, err := env.client.AddExpense(context.Background(), as(t, env, bob, &rpc.AddExpenseRequest{
			GroupID:     group.ID,
			Description: "Dinner",
			Amount:      "30",
		}))
		if err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}

		resp, err := env.client.GetGroup(context.Background(), as(t, env, alice, &rpc.GetGroupRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(resp.Msg.Group.Expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(resp.Msg.Group.Expenses))
		}
		exp := resp.Msg.Group.Expenses[0]
		if exp.Amount != "30.00" || exp.PaidBy != bob {
			t.Errorf("unexpected expense: %+v", exp)
		}
		if exp.Split[alice] != "15.00" || exp.Split[bob] != "15.00" {
			t.Errorf("unexpected split: %v", exp.Split)
		}
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := env.client.GetGroup(context.Background(), as(t, env, dave, &rpc.GetGroupRequest{GroupID: group.ID}))
		expectCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := env.client.GetGroup(context.Background(), as(t, env, alice, &rpc.GetGroupRequest{GroupID: "nonexistent"}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("empty group id", func(t *testing.T) {
		_, err := env.client.GetGroup(context.Background(), as(t, env, alice, &rpc.GetGroupRequest{}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	createGroup(t, env, alice, bob)
	createGroup(t, env, alice)
	createGroup(t, env, carol, dave)

	resp, err := env.client.ListGroups(context.Background(), as(t, env, alice, &rpc.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Errorf("expected 2 groups for alice, got %d", len(resp.Msg.Groups))
	}

	resp, err = env.client.ListGroups(context.Background(), as(t, env, bob, &rpc.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 1 {
		t.Errorf("expected 1 group for bob, got %d", len(resp.Msg.Groups))
	}
}

func TestDeleteGroup(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, alice, bob)

	_, err := env.client.DeleteGroup(context.Background(), as(t, env, bob, &rpc.DeleteGroupRequest{GroupID: group.ID}))
	expectCode(t, err, connect.CodePermissionDenied)

	_, err = env.client.DeleteGroup(context.Background(), as(t, env, alice, &rpc.DeleteGroupRequest{GroupID: group.ID}))
	if err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	_, err = env.client.GetGroup(context.Background(), as(t, env, alice, &rpc.GetGroupRequest{GroupID: group.ID}))
	expectCode(t, err, connect.CodeNotFound)
}
