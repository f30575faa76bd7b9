package services

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
)

// RegistryService registers custodian nodes and users.
type RegistryService struct {
	store  repomanager.Store
	logger logging.Logger
}

func NewRegistryService(store repomanager.Store, logger logging.Logger) *RegistryService {
	return &RegistryService{store: store, logger: logger.With("module", "registry")}
}

// RegisterNode creates the caller's node record. The first public key wins;
// a repeated registration is rejected as node_already_registered.
func (s *RegistryService) RegisterNode(ctx context.Context, caller models.Identity, publicKey string) (models.Outcome, error) {
	if err := caller.Validate(); err != nil {
		return models.Outcome{}, err
	}
	if err := models.ValidateText("public key", publicKey); err != nil {
		return models.Outcome{}, err
	}

	var created bool
	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		created, err = repos.Nodes().Create(ctx, &models.Node{ID: caller, PublicKey: publicKey})
		return err
	})
	if err != nil {
		return models.Outcome{}, err
	}
	if !created {
		s.logger.Debug(ctx, "node already registered", "node", caller)
		return models.Rejected(models.ReasonNodeAlreadyRegistered), nil
	}
	s.logger.Info(ctx, "node registered", "node", caller)
	return models.Applied(), nil
}

func (s *RegistryService) GetNode(ctx context.Context, id models.Identity) (*models.Node, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var node *models.Node
	err := s.store.View(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		node, err = repos.Nodes().Get(ctx, id)
		return err
	})
	return node, err
}

// RegisterUser stores the caller's profile, replacing any earlier one, and
// seeds an idle recovery session. Completion history of a previous
// registration is discarded.
func (s *RegistryService) RegisterUser(ctx context.Context, caller models.Identity, publicKey string, custodians [models.CustodianCount]models.Custodian) (models.Outcome, error) {
	if err := caller.Validate(); err != nil {
		return models.Outcome{}, err
	}
	if err := models.ValidateText("public key", publicKey); err != nil {
		return models.Outcome{}, err
	}
	for _, c := range custodians {
		if err := c.NodeID.Validate(); err != nil {
			return models.Outcome{}, err
		}
	}

	user := &models.User{ID: caller, PublicKey: publicKey, Custodians: custodians}
	session := models.NewRecovery(caller)

	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := repos.Users().Save(ctx, user); err != nil {
			return err
		}
		return repos.Recoveries().Save(ctx, &session)
	})
	if err != nil {
		return models.Outcome{}, err
	}
	s.logger.Info(ctx, "user registered", "user", caller, "custodians", user.CustodianIDs())
	return models.Applied(), nil
}

func (s *RegistryService) GetUser(ctx context.Context, id models.Identity) (*models.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var user *models.User
	err := s.store.View(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		user, err = repos.Users().Get(ctx, id)
		return err
	})
	return user, err
}
