package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"honorly/internal/cases"
	"honorly/internal/model"
	"honorly/internal/profile"
	"honorly/pkg/supabase"
)

// DeleteAccount removes everything the caller owns, then the auth user.
// Storage cleanup is best effort; losing the auth user deletion is an error.
func (uc *implUseCase) DeleteAccount(ctx context.Context, sc model.Scope, input profile.DeleteAccountInput) (profile.DeleteAccountOutput, error) {
	if input.Confirm != profile.ConfirmPhrase {
		return profile.DeleteAccountOutput{}, profile.ErrConfirmationRequired
	}

	var (
		objects []supabase.Object
		purged  cases.PurgeOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		objects, err = uc.storage.ListObjects(gctx, uc.photoBucket, sc.UserID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.DeleteAccount ListObjects: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purged, err = uc.cases.PurgeUser(gctx, sc.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAccount PurgeUser: %v", err)
		return profile.DeleteAccountOutput{}, err
	}

	paths := objectPaths(sc.UserID, objects, purged.PhotoRefs)
	removed := 0
	if err := uc.storage.RemoveObjects(ctx, uc.photoBucket, paths); err != nil {
		uc.l.Warnf(ctx, "uc.DeleteAccount RemoveObjects %d paths: %v", len(paths), err)
	} else {
		removed = len(paths)
	}

	if err := uc.repo.DeleteProfile(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAccount DeleteProfile: %v", err)
		return profile.DeleteAccountOutput{}, err
	}

	if err := uc.identity.DeleteUser(ctx, sc.UserID); err != nil && !errors.Is(err, supabase.ErrUserNotFound) {
		uc.l.Errorf(ctx, "uc.DeleteAccount DeleteUser: %v", err)
		return profile.DeleteAccountOutput{}, fmt.Errorf("%w: %v", profile.ErrIdentityDelete, err)
	}

	uc.l.Warnf(ctx, "security: account %s deleted (%d cases, %d files)", sc.UserID, purged.CasesDeleted, removed)
	return profile.DeleteAccountOutput{CasesDeleted: purged.CasesDeleted, ObjectsRemoved: removed}, nil
}

// objectPaths joins the listed objects under the user folder with the photo
// refs of purged cases, without duplicates.
func objectPaths(userID string, objects []supabase.Object, refs []string) []string {
	seen := make(map[string]bool, len(objects)+len(refs))
	var paths []string
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}
	for _, o := range objects {
		add(userID + "/" + o.Name)
	}
	for _, r := range refs {
		add(r)
	}
	return paths
}
