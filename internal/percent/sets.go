package percent

// Set is a 256-bit membership table of bytes that must be percent-encoded.
type Set [8]uint32

func (s *Set) Contains(b byte) bool {
	return s[b>>5]&(1<<(b&31)) != 0
}

func (s Set) with(bytes string) Set {
	for i := 0; i < len(bytes); i++ {
		b := bytes[i]
		s[b>>5] |= 1 << (b & 31)
	}
	return s
}

// The encode sets nest: each one below is a superset of the one it is built from.
var (
	C0Control = func() (s Set) {
		for b := 0; b < 0x20; b++ {
			s[b>>5] |= 1 << (b & 31)
		}
		for b := 0x7F; b <= 0xFF; b++ {
			s[b>>5] |= 1 << (b & 31)
		}
		return
	}()

	Fragment     = C0Control.with(" \"<>`")
	Query        = C0Control.with(" \"#<>")
	SpecialQuery = Query.with("'")
	Path         = Query.with("?^`{}")
	Userinfo     = Path.with("/:;=@[\\]^|")
	Component    = Userinfo.with("$%&+,")

	// FormURLEncoded is applied with space mapped to '+'.
	FormURLEncoded = Component.with("!'()~")
)
