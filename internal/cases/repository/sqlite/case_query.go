package sqlite

import repo "honorly/internal/cases/repository"

// buildLovedOneUpdate builds the SET list for the non-nil fields of opt.
func buildLovedOneUpdate(opt repo.UpdateLovedOneOptions) ([]string, []any) {
	var sets []string
	var args []any

	if opt.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *opt.FirstName)
	}
	if opt.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *opt.LastName)
	}
	if opt.PhotoRef != nil {
		sets = append(sets, "photo_ref = ?")
		args = append(args, *opt.PhotoRef)
	}
	return sets, args
}
