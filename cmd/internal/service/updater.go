package service

// changeSet acts as a "Change Set" context.
// It accumulates errors and tracks if a save is actually needed.
type changeSet struct {
	err   error
	dirty bool
}

func (c *changeSet) result() (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.dirty, nil
}

// setField copies newVal into field when it is present and different.
func setField[V comparable](c *changeSet, newVal *V, field *V) {
	if c.err != nil || newVal == nil || *newVal == *field {
		return
	}

	*field = *newVal
	c.dirty = true
}

// setOptional is setField for nullable columns.
func setOptional[V comparable](c *changeSet, newVal *V, field **V) {
	if c.err != nil || newVal == nil {
		return
	}

	if *field != nil && **field == *newVal {
		return
	}

	val := *newVal
	*field = &val
	c.dirty = true
}

// setConverted is setField for typed string enums.
func setConverted[V ~string](c *changeSet, newVal *string, field *V) {
	if newVal == nil {
		return
	}

	val := V(*newVal)
	setField(c, &val, field)
}
