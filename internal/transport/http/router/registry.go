package router

import (
	"sort"

	"go-gin-gorm-crm/internal/transport/http/ez"
)

// Modules implement either interface or both.
type APIModule interface{ MountAPI(ez.EZ) }
type AdminModule interface{ MountAdmin(ez.EZ) }

// prioritizer orders mounting; lower mounts first, default 100.
type prioritizer interface{ Priority() int }

type Registry struct {
	apiMods   []APIModule
	adminMods []AdminModule
}

// Register dispatches each module to the surfaces it implements.
func (r *Registry) Register(mods ...any) {
	for _, mod := range mods {
		if m, ok := mod.(APIModule); ok {
			r.apiMods = append(r.apiMods, m)
		}
		if m, ok := mod.(AdminModule); ok {
			r.adminMods = append(r.adminMods, m)
		}
	}
}

func (r *Registry) MountAPI(e ez.EZ) {
	mods := append([]APIModule(nil), r.apiMods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(e)
	}
}

func (r *Registry) MountAdmin(e ez.EZ) {
	mods := append([]AdminModule(nil), r.adminMods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAdmin(e)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
