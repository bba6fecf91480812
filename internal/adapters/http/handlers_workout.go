package web

import (
	"net/http"

	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/domain/identity"
	workoutDomain "gymtrack/internal/domain/workout"
)

// handlePlans handles GET (list) and POST (create/update) for /plans.
// Members see the catalog read-only; staff manage their own plans.
func handlePlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		// Staff see their own plans; admin and members see all.
		trainerID := 0
		if principal.Role == identity.RoleTrainer {
			trainerID = principal.UserID
		}
		plans, err := stores.WorkoutStore.ListPlans(ctx, trainerID)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "plans.html", map[string]any{
			"Plans":          plans,
			"PlanOptions":    stores.WorkoutStore.PlanOptionsSilent(ctx),
			"MemberOptions":  stores.MemberStore.OptionsSilent(ctx, principal),
			"TrainerOptions": stores.TrainerStore.OptionsSilent(ctx),
		})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	p := workoutDomain.Plan{
		PlanID:        formInt(r, "plan_id"),
		Goal:          r.FormValue("goal"),
		DurationWeeks: formInt(r, "duration_weeks"),
		TrainerID:     formInt(r, "trainer_id"),
	}
	deps := orchestrators.ManagePlanDeps{WorkoutStore: stores.WorkoutStore}
	var err error
	if p.PlanID == 0 {
		err = orchestrators.ExecuteCreatePlan(ctx, principal, p, deps)
	} else {
		err = orchestrators.ExecuteUpdatePlan(ctx, principal, p, deps)
	}
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/plans", http.StatusSeeOther)
}

// handlePlanDelete handles POST /plans/delete.
func handlePlanDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteDeletePlan(r.Context(), principalFrom(r), formInt(r, "plan_id"),
		orchestrators.ManagePlanDeps{WorkoutStore: stores.WorkoutStore})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/plans", http.StatusSeeOther)
}

// handleEnroll handles POST /actions/enroll.
func handleEnroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteEnrollMember(r.Context(), principalFrom(r), orchestrators.EnrollMemberInput{
		MemberID: formInt(r, "member_id"),
		PlanID:   formInt(r, "plan_id"),
	}, orchestrators.EnrollMemberDeps{
		WorkoutStore: stores.WorkoutStore,
		MemberStore:  stores.MemberStore,
	})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/plans", http.StatusSeeOther)
}

// handleCompletePlan handles POST /actions/complete.
func handleCompletePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	principal := principalFrom(r)
	memberID := formInt(r, "member_id")
	if principal.Role == identity.RoleMember {
		memberID = principal.UserID
	}

	err := orchestrators.ExecuteCompletePlan(r.Context(), principal, orchestrators.EnrollMemberInput{
		MemberID: memberID,
		PlanID:   formInt(r, "plan_id"),
	}, orchestrators.EnrollMemberDeps{
		WorkoutStore: stores.WorkoutStore,
		MemberStore:  stores.MemberStore,
	})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
