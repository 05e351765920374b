package structured

// Doc is a wrapper around structured data that exposes the data query and
// manipulation functions of the structured package on this data.
type Doc struct {
	Data interface{}
}

// Wrap wraps the given data structure as a Doc, offering query and
// manipulation functions for the data.
func Wrap(data interface{}) *Doc {
	return &Doc{data}
}

// Set replaces the element at the given path - see Set.
func (d *Doc) Set(path Path, val interface{}) error {
	data, err := Set(d.Data, path, val)
	if err != nil {
		return err
	}
	d.Data = data
	return nil
}

// Merge merges the given data into the document at path - see Merge.
func (d *Doc) Merge(path Path, data interface{}) error {
	merged, err := Merge(d.Data, path, data)
	if err != nil {
		return err
	}
	d.Data = merged
	return nil
}

// Delete removes the element at the given path - see Delete. Returns true if
// the element was removed.
func (d *Doc) Delete(path ...string) bool {
	data, deleted := Delete(d.Data, path)
	if deleted {
		d.Data = data
	}
	return deleted
}

// Get returns the element at the given path wrapped in a Value.
func (d *Doc) Get(path ...string) *Value {
	return NewValue(Resolve(path, d.Data))
}

// Inc increments the number at the given path - see Inc.
func (d *Doc) Inc(path Path, delta float64, dflt float64) (float64, error) {
	data, res, err := Inc(d.Data, path, delta, dflt)
	if err != nil {
		return 0, err
	}
	d.Data = data
	return res, nil
}

// Toggle negates the boolean at the given path - see Toggle.
func (d *Doc) Toggle(path Path, dflt bool) (bool, error) {
	data, res, err := Toggle(d.Data, path, dflt)
	if err != nil {
		return false, err
	}
	d.Data = data
	return res, nil
}

// Query evaluates the given query on the document - see Query.
func (d *Doc) Query(query string) *Value {
	filter, err := NewFilter(query)
	if err != nil {
		return NewValue(nil, err)
	}
	return NewValue(filter.Apply(d.Data))
}

// Transform runs the given transformer on the document's data and replaces
// the data with the result. The data remains unchanged if the transformation
// fails.
func (d *Doc) Transform(t Transformer) error {
	data, err := t.Transform(d.Data)
	if err != nil {
		return err
	}
	d.Data = data
	return nil
}

// Clear discards the document's data.
func (d *Doc) Clear() {
	d.Data = nil
}

// Path is a convenience method to create a path from an arbitrary number of
// strings.
func (d *Doc) Path(p ...string) Path {
	return p
}
