package config

import (
	"fmt"
	"io"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/policy"
	"os"

	"gopkg.in/yaml.v3"
)

// AccessFile is the YAML shape of a role table:
//
//	roles:
//	  candidate: [edit_profile, create_applications]
//	  admin: [administrator]
//	sensitive: [user, application]
type AccessFile struct {
	Roles     map[string][]string `yaml:"roles"`
	Sensitive []string            `yaml:"sensitive"`
}

// Access is the resolved, immutable access configuration.
type Access struct {
	Grants    map[entity.Role]entity.Permission
	Sensitive []entity.Kind
}

// DefaultAccess mirrors the built-in policy tables.
func DefaultAccess() *Access {
	return &Access{
		Grants:    policy.DefaultGrants(),
		Sensitive: policy.DefaultSensitive(),
	}
}

// LoadAccess reads the role table at path, falling back to DefaultAccess
// when path is empty.
func LoadAccess(path string) (*Access, error) {
	if path == "" {
		return DefaultAccess(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open access policy: %w", err)
	}
	defer f.Close()

	return ParseAccess(f)
}

// ParseAccess decodes a YAML role table. Unknown roles fail with
// *failure.UnknownRoleError, unknown permissions or kinds with a plain error.
func ParseAccess(r io.Reader) (*Access, error) {
	var file AccessFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode access policy: %w", err)
	}

	access := &Access{Grants: make(map[entity.Role]entity.Permission, len(file.Roles))}
	for name, perms := range file.Roles {
		role, err := entity.ParseRole(name)
		if err != nil {
			return nil, err
		}

		var mask entity.Permission
		for _, permName := range perms {
			perm, err := entity.ParsePermission(permName)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", role, err)
			}
			mask = mask.Add(perm)
		}
		access.Grants[role] = mask
	}

	for _, name := range file.Sensitive {
		kind, err := entity.ParseKind(name)
		if err != nil {
			return nil, err
		}
		access.Sensitive = append(access.Sensitive, kind)
	}
	return access, nil
}

// AdminOnly lists the "action kind" pairs no role but admin is granted.
// Pairs missing from the requirement table are admin only too.
func (a *Access) AdminOnly() []string {
	var pairs []string
	for _, kind := range entity.Kinds {
		for _, action := range policy.Mutations {
			perm, ok := policy.Required(kind, action)
			if !ok || !a.grantedToNonAdmin(perm) {
				pairs = append(pairs, fmt.Sprintf("%s %s", action, kind))
			}
		}
	}
	return pairs
}

func (a *Access) grantedToNonAdmin(perm entity.Permission) bool {
	for role, perms := range a.Grants {
		if role != entity.RoleAdmin && perms.HasEffective(perm) {
			return true
		}
	}
	return false
}

// Build constructs the registry and the access policy from the configuration.
func (a *Access) Build() (*policy.AccessPolicy, error) {
	registry, err := policy.NewRoleRegistry(a.Grants)
	if err != nil {
		return nil, err
	}
	return policy.NewAccessPolicy(registry, a.Sensitive), nil
}
