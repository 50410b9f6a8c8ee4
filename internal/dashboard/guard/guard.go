// Package guard decides whether the current operator may enter a page.
// It owns session bootstrap: when a credential exists but no identity is
// loaded yet, the guard resolves the identity against the API exactly
// once and publishes it to the session store. The outcome of a check is
// a plain value; the caller performs the navigation.
package guard

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
	"github.com/healthhub/gym-admin/internal/dashboard/credential"
	"github.com/healthhub/gym-admin/internal/dashboard/session"
)

// LoginPath is where every refused check sends the operator.
const LoginPath = "/"

// IdentityResolver asks the API who the bearer of the stored credential
// is. *apiclient.Client satisfies it.
type IdentityResolver interface {
	Me(ctx context.Context) (*apiclient.MePayload, error)
}

// Decision is the outcome of a check. Either Granted is true and User is
// the authenticated identity, or Granted is false and Reason/RedirectTo
// say why and where to go.
type Decision struct {
	Granted    bool
	User       *session.User
	Reason     Reason
	RedirectTo string
}

func granted(u *session.User) Decision {
	return Decision{Granted: true, User: u}
}

func redirect(reason Reason) Decision {
	return Decision{Reason: reason, RedirectTo: LoginPath}
}

// Guard checks page access against the stored credential and session.
type Guard struct {
	creds    credential.Store
	sessions *session.Store
	resolver IdentityResolver

	group singleflight.Group
}

func New(creds credential.Store, sessions *session.Store, resolver IdentityResolver) *Guard {
	return &Guard{creds: creds, sessions: sessions, resolver: resolver}
}

// Check evaluates access to a page that allows the given roles. A nil
// allowed set means any authenticated operator may enter; an empty
// non-nil set is a declared requirement that no role satisfies.
//
// Concurrent checks while an identity resolution is in flight share the
// single request; once the identity is in the session store, further
// checks evaluate roles without touching the API.
func (g *Guard) Check(ctx context.Context, allowed domain.RoleSet) Decision {
	token, err := g.creds.Get()
	if err != nil || token == "" {
		return g.refuse(NoCredential)
	}

	user := g.sessions.Get().User
	if user == nil {
		user, err = g.resolve(ctx, token)
		if err != nil {
			return g.refuse(reasonFor(err))
		}
	}

	if allowed != nil && !allowed.Contains(user.Role) {
		return g.refuse(InsufficientRole)
	}
	return granted(user)
}

// CheckRoute is Check against a route table entry.
func (g *Guard) CheckRoute(ctx context.Context, route Route) Decision {
	return g.Check(ctx, route.AllowedRoles)
}

// refuse tears down local state so the next check starts from scratch,
// then reports the redirect. Erasing a credential that is already gone
// is a no-op.
func (g *Guard) refuse(reason Reason) Decision {
	g.sessions.Clear()
	_ = g.creds.Remove()
	return redirect(reason)
}

var (
	errExpired      = errors.New("session expired")
	errInvalid      = errors.New("invalid session")
	errUnresolvable = errors.New("identity resolution failed")
)

func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, errExpired):
		return SessionExpired
	case errors.Is(err, errInvalid):
		return InvalidSession
	default:
		return UnknownFailure
	}
}

// resolve fetches the identity behind token and stores it in the
// session. Callers racing on the same token share one API request and
// its result.
func (g *Guard) resolve(ctx context.Context, token string) (*session.User, error) {
	g.sessions.SetLoading(true)
	defer g.sessions.SetLoading(false)

	v, err, _ := g.group.Do(token, func() (any, error) {
		payload, err := g.resolver.Me(ctx)
		if err != nil {
			var httpErr *apiclient.HTTPError
			if errors.As(err, &httpErr) {
				switch httpErr.StatusCode {
				case 401:
					return nil, errExpired
				case 403:
					return nil, errInvalid
				}
			}
			return nil, errUnresolvable
		}
		if !payload.Success || payload.User == nil {
			return nil, errInvalid
		}
		role, err := domain.ParseRole(string(payload.User.Role))
		if err != nil {
			return nil, errInvalid
		}
		user := session.User{
			UserID: payload.User.ID,
			Name:   payload.User.Name,
			Email:  payload.User.Email,
			Phone:  payload.User.Phone,
			Role:   role,
		}
		g.sessions.SetUser(user)
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*session.User), nil
}
