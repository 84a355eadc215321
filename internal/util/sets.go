package util

type Void struct{}

type StringSet map[string]Void

func NewStringSet(capacity int) StringSet { return make(StringSet, capacity) }

func (s StringSet) Add(k string)      { s[k] = Void{} }
func (s StringSet) Remove(k string)   { delete(s, k) }
func (s StringSet) Has(k string) bool { _, ok := s[k]; return ok }
func (s StringSet) Len() int          { return len(s) }

// Equal 两个集合元素完全一致时为真
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}
