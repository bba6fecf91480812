package web

import (
	"net/http"

	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/application/projections"
	"gymtrack/internal/domain/identity"
	memberDomain "gymtrack/internal/domain/member"
	membershipDomain "gymtrack/internal/domain/membership"
	trainerDomain "gymtrack/internal/domain/trainer"
)

// handleMembers handles GET (scoped roster) and POST (create) for /members.
func handleMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		items, err := projections.QueryGetMemberList(ctx, principal, projections.GetMemberListDeps{
			MemberStore:  stores.MemberStore,
			TrainerStore: stores.TrainerStore,
			PackageStore: stores.PackageStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "members.html", map[string]any{
			"Members":        items,
			"TrainerOptions": stores.TrainerStore.OptionsSilent(ctx),
			"PackageOptions": stores.PackageStore.OptionsSilent(ctx),
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

	input := orchestrators.CreateMemberInput{Member: memberFromForm(r)}
	err := orchestrators.ExecuteCreateMember(ctx, principal, input, orchestrators.ManageMemberDeps{
		MemberStore:  stores.MemberStore,
		EmailSender:  emailSender,
		EmailFrom:    emailFromAddress,
		EmailReplyTo: emailReplyTo,
	})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

// handleMemberEdit handles GET (form) and POST (update) for /members/edit.
func handleMemberEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		m, err := stores.MemberStore.GetByID(ctx, formInt(r, "id"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := principal.CanViewMember(m.MemberID, m.TrainerID); err != nil {
			authzError(w, err)
			return
		}
		renderTemplate(w, r, "member_edit.html", map[string]any{
			"Member":         m,
			"TrainerOptions": stores.TrainerStore.OptionsSilent(ctx),
			"PackageOptions": stores.PackageStore.OptionsSilent(ctx),
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

	m := memberFromForm(r)
	m.MemberID = formInt(r, "member_id")
	err := orchestrators.ExecuteUpdateMember(ctx, principal, orchestrators.UpdateMemberInput{Member: m},
		orchestrators.ManageMemberDeps{MemberStore: stores.MemberStore})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

// handleMemberDelete handles POST /members/delete.
func handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteDeleteMember(r.Context(), principalFrom(r), formInt(r, "member_id"),
		orchestrators.ManageMemberDeps{MemberStore: stores.MemberStore})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

// handleMemberProfile renders one member's profile with payments,
// attendance, plans and derived status.
func handleMemberProfile(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	memberID := formInt(r, "id")
	if memberID == 0 && principal.Role == identity.RoleMember {
		memberID = principal.UserID
	}

	result, err := projections.QueryGetMemberProfile(r.Context(), principal, memberID,
		projections.GetMemberProfileDeps{
			MemberStore:     stores.MemberStore,
			PaymentStore:    stores.PaymentStore,
			AttendanceStore: stores.AttendanceStore,
			WorkoutStore:    stores.WorkoutStore,
			StatusDeps: projections.GetMembershipStatusDeps{
				MemberStore:     stores.MemberStore,
				MembershipStore: stores.PackageStore,
			},
		}, timeNow())
	if err != nil {
		authzError(w, err)
		return
	}
	renderTemplate(w, r, "member_profile.html", result)
}

// handleTrainers handles GET (list) and POST (create/update) for /trainers.
func handleTrainers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodGet {
		trainers, err := stores.TrainerStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "trainers.html", map[string]any{"Trainers": trainers})
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

	t := trainerDomain.Trainer{
		TrainerID:   formInt(r, "trainer_id"),
		TrainerName: r.FormValue("trainer_name"),
		Email:       r.FormValue("email"),
		PhoneNo:     r.FormValue("phone_no"),
		Specialty:   r.FormValue("specialty"),
	}
	if err := t.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var err error
	if t.TrainerID == 0 {
		err = stores.TrainerStore.Create(ctx, t)
	} else {
		err = stores.TrainerStore.Update(ctx, t)
	}
	if err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/trainers", http.StatusSeeOther)
}

// handleTrainerDelete handles POST /trainers/delete.
func handleTrainerDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	if err := stores.TrainerStore.Delete(r.Context(), formInt(r, "trainer_id")); err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/trainers", http.StatusSeeOther)
}

// handlePackages handles GET (list) for all roles and POST (create/update)
// for admin.
func handlePackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		packages, err := stores.PackageStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "packages.html", map[string]any{"Packages": packages})
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

	price, _ := parseFloat(r.FormValue("price"))
	p := membershipDomain.Package{
		PackageID:    formInt(r, "package_id"),
		PackageName:  r.FormValue("package_name"),
		Price:        price,
		DurationDays: formInt(r, "duration_days"),
	}
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var err error
	if p.PackageID == 0 {
		err = stores.PackageStore.Create(ctx, p)
	} else {
		err = stores.PackageStore.Update(ctx, p)
	}
	if err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/packages", http.StatusSeeOther)
}

// handlePackageDelete handles POST /packages/delete.
func handlePackageDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	if err := stores.PackageStore.Delete(r.Context(), formInt(r, "package_id")); err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/packages", http.StatusSeeOther)
}

func memberFromForm(r *http.Request) memberDomain.Member {
	return memberDomain.Member{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		PhoneNo:   r.FormValue("phone_no"),
		Address:   r.FormValue("address"),
		DoB:       r.FormValue("dob"),
		JoinDate:  r.FormValue("join_date"),
		Gender:    r.FormValue("gender"),
		PackageID: formInt(r, "package_id"),
		TrainerID: formInt(r, "trainer_id"),
	}
}
