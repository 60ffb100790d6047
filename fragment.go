package uri

// fragment = *( pchar / "/" / "?" )
func validateFragment(fragment string) error {
	if _, err := NewPercentString(fragment).Validate(queryFragmentSet); err != nil {
		return errorsJoin(ErrInvalidFragment, err)
	}
	return nil
}
