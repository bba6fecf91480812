package web

import (
	"net/http"

	equipmentDomain "gymtrack/internal/domain/equipment"
)

// handleEquipment handles GET (inventory) for all roles and POST
// (add/status change) for admin.
func handleEquipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		items, err := stores.EquipmentStore.ListEquipment(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "equipment.html", map[string]any{"Equipment": items})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !principal.IsAdmin() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	var err error
	if id := formInt(r, "equipment_id"); id != 0 {
		err = stores.EquipmentStore.SetStatus(ctx, id, r.FormValue("status"))
	} else {
		err = stores.EquipmentStore.CreateEquipment(ctx, equipmentDomain.Equipment{
			Name:     r.FormValue("name"),
			Category: r.FormValue("category"),
			Status:   r.FormValue("status"),
		})
	}
	if err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/equipment", http.StatusSeeOther)
}

// handleExercises handles GET (catalog) for all roles and POST (add) for
// staff.
func handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		exercises, err := stores.EquipmentStore.ListExercises(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "exercises.html", map[string]any{"Exercises": exercises})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !principal.CanManageRoster() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	err := stores.EquipmentStore.CreateExercise(ctx, equipmentDomain.Exercise{
		Name:        r.FormValue("name"),
		MuscleGroup: r.FormValue("muscle_group"),
		EquipmentID: formInt(r, "equipment_id"),
	})
	if err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/exercises", http.StatusSeeOther)
}
