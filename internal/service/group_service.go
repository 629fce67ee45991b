package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/HrisheekeshS/Bill-Split/internal/middleware"
	"github.com/HrisheekeshS/Bill-Split/internal/models"
	"github.com/HrisheekeshS/Bill-Split/internal/storage"
	"github.com/HrisheekeshS/Bill-Split/pkg/rpc"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	rpc.UnimplementedGroupServiceHandler
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// actorFrom reads the acting member set by the auth interceptor. Handlers call
// it once and pass the result down explicitly.
func actorFrom(ctx context.Context) (string, error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return "", ErrNoActor
	}
	return email, nil
}

// memberGroup loads a group's metadata and checks that actor belongs to it.
func (s *GroupService) memberGroup(ctx context.Context, groupID, actor string) (*models.Group, error) {
	if groupID == "" {
		return nil, ErrMissingGroup
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(actor) {
		return nil, fmt.Errorf("group %s: %w", groupID, ErrNotMember)
	}
	return group, nil
}

// loadLedger fills in a group's expenses and payments, reading both concurrently.
func (s *GroupService) loadLedger(ctx context.Context, group *models.Group) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.store.ListExpenses(gctx, group.ID)
		if err != nil {
			return err
		}
		group.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		payments, err := s.store.ListPayments(gctx, group.ID)
		if err != nil {
			return err
		}
		group.Payments = payments
		return nil
	})
	return g.Wait()
}

// CreateGroup creates a new group. The caller becomes its creator and first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberEmails),
		"actor", actor,
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, toConnectError(ErrMissingName)
	}

	group := &models.Group{
		Name:         name,
		MemberEmails: models.NormalizeMembers(actor, req.Msg.MemberEmails),
		CreatedBy:    actor,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID, "members", len(group.MemberEmails))

	return connect.NewResponse(&rpc.CreateGroupResponse{Group: toRPCGroup(group)}), nil
}

// GetGroup retrieves a group with its full ledger.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		slog.Warn("GetGroup rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}
	if err := s.loadLedger(ctx, group); err != nil {
		slog.Error("Failed to load ledger", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetGroup successful",
		"group_id", group.ID,
		"expenses", len(group.Expenses),
		"payments", len(group.Payments),
	)

	return connect.NewResponse(&rpc.GetGroupResponse{Group: toRPCGroup(group)}), nil
}

// ListGroups retrieves the groups the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("ListGroups request received", "actor", actor)

	groups, err := s.store.ListGroupsByMember(ctx, actor)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	rpcGroups := make([]*rpc.Group, len(groups))
	for i, group := range groups {
		rpcGroups[i] = toRPCGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&rpc.ListGroupsResponse{Groups: rpcGroups}), nil
}

// DeleteGroup removes a group and its ledger. Only the creator may do this.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		slog.Warn("DeleteGroup rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}
	if group.CreatedBy != actor {
		return nil, toConnectError(ErrNotCreator)
	}

	if err := s.store.DeleteGroup(ctx, group.ID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group deleted", "group_id", group.ID)

	return connect.NewResponse(&rpc.DeleteGroupResponse{}), nil
}
