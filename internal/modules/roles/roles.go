// Package roles gates dashboard capabilities by the user's role. The role
// lives server-side and arrives asynchronously, so resolution carries an
// explicit status: a loading or failed fetch is never silently treated as a
// plain user.
package roles

import (
	"context"
	"net/url"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// Status of a role resolution.
type Status int

const (
	StatusLoading Status = iota // fetch not finished yet
	StatusKnown                 // role confirmed by the API
	StatusUnknown               // fetch failed; grant nothing
)

type Capability string

const (
	CapSendParcel     Capability = "send-parcel"
	CapMyParcels      Capability = "my-parcels"
	CapTrackParcel    Capability = "track-parcel"
	CapPaymentHistory Capability = "payment-history"

	CapPendingDeliveries   Capability = "pending-deliveries"
	CapCompletedDeliveries Capability = "completed-deliveries"
	CapMyEarnings          Capability = "my-earnings"

	CapAssignRider   Capability = "assign-rider"
	CapActiveRiders  Capability = "active-riders"
	CapPendingRiders Capability = "pending-riders"
	CapManageAdmins  Capability = "manage-admins"
)

// Capabilities maps a role to the features it may see. Every role gets the
// base parcel features; riders and admins add their own sections.
func Capabilities(r Role) map[Capability]bool {
	caps := map[Capability]bool{
		CapSendParcel:     true,
		CapMyParcels:      true,
		CapTrackParcel:    true,
		CapPaymentHistory: true,
	}
	switch r {
	case RoleRider:
		caps[CapPendingDeliveries] = true
		caps[CapCompletedDeliveries] = true
		caps[CapMyEarnings] = true
	case RoleAdmin:
		caps[CapAssignRider] = true
		caps[CapActiveRiders] = true
		caps[CapPendingRiders] = true
		caps[CapManageAdmins] = true
	}
	return caps
}

// Resolution is the outcome of a role fetch.
type Resolution struct {
	Role   Role
	Status Status
}

// Can reports whether the capability is granted. Anything other than a
// confirmed role grants nothing.
func (r Resolution) Can(c Capability) bool {
	return r.Status == StatusKnown && Capabilities(r.Role)[c]
}

// API is the slice of the remote API used to resolve roles.
type API interface {
	Get(ctx context.Context, path string, out any) error
}

// Fetcher resolves a user's role from the API.
type Fetcher struct {
	api API
}

func NewFetcher(api API) *Fetcher {
	return &Fetcher{api: api}
}

// Resolve looks up the role for an email. A successful response with no role
// means an ordinary user; a failed fetch resolves to StatusUnknown and the
// caller decides how to degrade.
func (f *Fetcher) Resolve(ctx context.Context, email string) Resolution {
	q := url.Values{"email": {email}}
	var out struct {
		Role Role `json:"role"`
	}
	if err := f.api.Get(ctx, "/users/role?"+q.Encode(), &out); err != nil {
		return Resolution{Status: StatusUnknown}
	}
	if out.Role == "" {
		out.Role = RoleUser
	}
	return Resolution{Role: out.Role, Status: StatusKnown}
}
