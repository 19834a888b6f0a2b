package catalog

import "secondsole/internal/types"

// Seeded returns the build-time inventory of the Medina store. Ids are stable
// for the life of the catalog; cart lines and rotation items reference them.
func Seeded() *Catalog {
	return New([]types.Shoe{
		{
			ID: "saucony-ride-17", Name: "Ride 17", Brand: "Saucony", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 8, Weight: 8.8, Gender: types.GenderUnisex,
			Description: "Dependable daily trainer with a balanced ride.",
		},
		{
			ID: "saucony-guide-17", Name: "Guide 17", Brand: "Saucony", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportStability, Cushion: types.CushionBalanced,
			Drop: 6, Weight: 9.1, Gender: types.GenderUnisex,
			Description: "Centered-feel stability without a harsh post.",
		},
		{
			ID: "saucony-peregrine-14", Name: "Peregrine 14", Brand: "Saucony", Price: 135,
			Category: types.CategoryTrail, Support: types.SupportNeutral, Cushion: types.CushionFirm,
			Drop: 4, Weight: 9.4, Gender: types.GenderUnisex,
			Description: "Aggressive lugs for mud, roots, and rocks.",
		},
		{
			ID: "brooks-ghost-16", Name: "Ghost 16", Brand: "Brooks", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 10, Weight: 9.5, Gender: types.GenderUnisex, IsStaffPick: true,
			Description: "The neighborhood favorite. Smooth and predictable.",
		},
		{
			ID: "brooks-adrenaline-24", Name: "Adrenaline GTS 24", Brand: "Brooks", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportStability, Cushion: types.CushionBalanced,
			Drop: 12, Weight: 10.1, Gender: types.GenderMen,
			Description: "GuideRails support for overpronators.",
		},
		{
			ID: "brooks-adrenaline-24-w", Name: "Adrenaline GTS 24", Brand: "Brooks", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportStability, Cushion: types.CushionBalanced,
			Drop: 12, Weight: 8.9, Gender: types.GenderWomen,
			Description: "GuideRails support for overpronators.",
		},
		{
			ID: "hoka-clifton-9", Name: "Clifton 9", Brand: "Hoka", Price: 145,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionPlush,
			Drop: 5, Weight: 8.7, Gender: types.GenderUnisex, IsStaffPick: true,
			Description: "Soft, rockered cruiser for easy miles.",
		},
		{
			ID: "hoka-speedgoat-6", Name: "Speedgoat 6", Brand: "Hoka", Price: 155,
			Category: types.CategoryTrail, Support: types.SupportNeutral, Cushion: types.CushionPlush,
			Drop: 4, Weight: 9.8, Gender: types.GenderUnisex,
			Description: "Max-cushion ultra shoe with Vibram grip.",
		},
		{
			ID: "hoka-gaviota-5", Name: "Gaviota 5", Brand: "Hoka", Price: 175,
			Category: types.CategoryRoad, Support: types.SupportStability, Cushion: types.CushionPlush,
			Drop: 6, Weight: 10.9, Gender: types.GenderUnisex,
			Description: "Plush stability for long, steady efforts.",
		},
		{
			ID: "nb-880-v14", Name: "Fresh Foam 880v14", Brand: "New Balance", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 8, Weight: 9.3, Gender: types.GenderUnisex,
			Description: "Workhorse trainer, true to fit.",
		},
		{
			ID: "nb-880-v14-wide", Name: "Fresh Foam 880v14 (4E)", Brand: "New Balance", Price: 140,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 8, Weight: 9.4, Gender: types.GenderMen,
			Description: "The 880 in an extra-wide 4E build.",
		},
		{
			ID: "altra-lone-peak-8", Name: "Lone Peak 8", Brand: "Altra", Price: 140,
			Category: types.CategoryTrail, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 0, Weight: 10.6, Gender: types.GenderUnisex,
			Description: "Zero drop, foot-shaped toe box, trail classic.",
		},
		{
			ID: "altra-torin-7", Name: "Torin 7", Brand: "Altra", Price: 150,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionPlush,
			Drop: 0, Weight: 9.8, Gender: types.GenderUnisex,
			Description: "Cushioned zero-drop road shoe for natural splay.",
		},
		{
			ID: "nike-pegasus-41", Name: "Pegasus 41", Brand: "Nike", Price: 130,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 10, Weight: 9.2, Gender: types.GenderUnisex,
			Description: "Springy all-rounder at a fair price.",
		},
		{
			ID: "nike-dragonfly-2", Name: "ZoomX Dragonfly 2", Brand: "Nike", Price: 160,
			Category: types.CategoryTrack, Support: types.SupportNeutral, Cushion: types.CushionFirm,
			Drop: 8, Weight: 4.7, Gender: types.GenderUnisex, IsStaffPick: true,
			Description: "Spikes for the oval. Race-day only.",
		},
		{
			ID: "asics-gel-kayano-31", Name: "Gel-Kayano 31", Brand: "Asics", Price: 165,
			Category: types.CategoryRoad, Support: types.SupportStability, Cushion: types.CushionPlush,
			Drop: 10, Weight: 10.7, Gender: types.GenderWomen,
			Description: "Flagship stability with 4D guidance.",
		},
		{
			ID: "on-cloudsurfer-trail", Name: "Cloudsurfer Trail", Brand: "On", Price: 160,
			Category: types.CategoryHybrid, Support: types.SupportNeutral, Cushion: types.CushionBalanced,
			Drop: 7, Weight: 9.7, Gender: types.GenderUnisex,
			Description: "Door-to-trail shoe for mixed surfaces.",
		},
		{
			ID: "mizuno-wave-rider-28", Name: "Wave Rider 28", Brand: "Mizuno", Price: 125,
			Category: types.CategoryRoad, Support: types.SupportNeutral, Cushion: types.CushionFirm,
			Drop: 12, Weight: 9.8, Gender: types.GenderUnisex,
			Description: "Snappy, firm ride with the classic Wave plate.",
		},
	})
}
