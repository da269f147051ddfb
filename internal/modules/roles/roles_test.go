package roles

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeAPI struct {
	path string
	out  string
	err  error
}

func (f *fakeAPI) Get(ctx context.Context, path string, out any) error {
	f.path = path
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.out), out)
}

func TestCapabilitiesByRole(t *testing.T) {
	cases := []struct {
		role    Role
		granted []Capability
		denied  []Capability
	}{
		{RoleUser,
			[]Capability{CapSendParcel, CapMyParcels, CapTrackParcel, CapPaymentHistory},
			[]Capability{CapPendingDeliveries, CapAssignRider, CapManageAdmins}},
		{RoleRider,
			[]Capability{CapSendParcel, CapPendingDeliveries, CapCompletedDeliveries, CapMyEarnings},
			[]Capability{CapAssignRider, CapActiveRiders, CapManageAdmins}},
		{RoleAdmin,
			[]Capability{CapSendParcel, CapAssignRider, CapActiveRiders, CapPendingRiders, CapManageAdmins},
			[]Capability{CapPendingDeliveries, CapMyEarnings}},
	}
	for _, tc := range cases {
		caps := Capabilities(tc.role)
		for _, c := range tc.granted {
			if !caps[c] {
				t.Errorf("%s: capability %s not granted", tc.role, c)
			}
		}
		for _, c := range tc.denied {
			if caps[c] {
				t.Errorf("%s: capability %s wrongly granted", tc.role, c)
			}
		}
	}
}

func TestResolutionGrantsNothingUnlessKnown(t *testing.T) {
	for _, st := range []Status{StatusLoading, StatusUnknown} {
		r := Resolution{Role: RoleAdmin, Status: st}
		if r.Can(CapManageAdmins) {
			t.Errorf("status %d: capability granted before role is known", st)
		}
	}
	known := Resolution{Role: RoleAdmin, Status: StatusKnown}
	if !known.Can(CapManageAdmins) {
		t.Error("known admin denied CapManageAdmins")
	}
}

func TestResolveKnownRole(t *testing.T) {
	api := &fakeAPI{out: `{"role":"rider"}`}
	got := NewFetcher(api).Resolve(context.Background(), "rider@example.com")
	if got.Status != StatusKnown || got.Role != RoleRider {
		t.Errorf("Resolve = %+v", got)
	}
	if api.path != "/users/role?email=rider%40example.com" {
		t.Errorf("path = %q", api.path)
	}
}

func TestResolveEmptyRoleDefaultsToUser(t *testing.T) {
	api := &fakeAPI{out: `{}`}
	got := NewFetcher(api).Resolve(context.Background(), "someone@example.com")
	if got.Status != StatusKnown || got.Role != RoleUser {
		t.Errorf("Resolve = %+v, want known user", got)
	}
}

func TestResolveFetchFailureIsUnknown(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	got := NewFetcher(api).Resolve(context.Background(), "someone@example.com")
	if got.Status != StatusUnknown {
		t.Errorf("Resolve = %+v, want unknown", got)
	}
	if got.Can(CapSendParcel) {
		t.Error("unknown resolution granted a capability")
	}
}
