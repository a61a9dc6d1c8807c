package policy

import "art-market/internal/models"

// NavLink is one entry of the navigation menu shown to a principal
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type audience uint8

const (
	anonymous audience = 1 << iota
	customers
	sellers
	admins

	members  = customers | sellers
	visitors = anonymous | members
)

func audienceOf(p *models.Principal) audience {
	if p == nil {
		return anonymous
	}
	switch p.Role {
	case models.RoleAdmin:
		return admins
	case models.RoleSeller:
		return sellers
	default:
		return customers
	}
}

// navTable lists every menu entry in display order with who may see it
var navTable = []struct {
	link NavLink
	who  audience
}{
	{NavLink{"Home", RootPath}, visitors},
	{NavLink{"Auctions", "/auctions"}, visitors},
	{NavLink{"Artists", "/artists"}, visitors},
	{NavLink{"About", "/about"}, visitors},
	{NavLink{"Dashboard", SellerHome}, sellers},
	{NavLink{"Profile", "/profile"}, members},

	{NavLink{"Dashboard", AdminRootPath}, admins},
	{NavLink{"Seller Applications", "/admin/applications"}, admins},
	{NavLink{"Auction Approvals", "/admin/listings"}, admins},

	{NavLink{"Log in", LoginPath}, anonymous},
	{NavLink{"Sign up", "/signup"}, anonymous},
}

// NavFor returns the menu for principal. An entry is only offered when
// RedirectFor would let the principal through to it.
func NavFor(principal *models.Principal) []NavLink {
	aud := audienceOf(principal)

	out := make([]NavLink, 0, len(navTable))
	for _, e := range navTable {
		if e.who&aud == 0 {
			continue
		}
		if _, redirect := RedirectFor(principal, e.link.Path); redirect {
			continue
		}
		out = append(out, e.link)
	}
	return out
}
