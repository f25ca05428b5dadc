package sortable

// Int is a sortable wrapper for int. Convert back with int(v).
type Int int

// Int64 is a sortable wrapper for int64.
type Int64 int64

// Uint64 is a sortable wrapper for uint64.
type Uint64 uint64

// Byte is a sortable wrapper for byte.
type Byte byte

// String is a sortable wrapper for string, ordered lexicographically by bytes.
type String string

var (
	_ Sortable[Int]    = Int(0)
	_ Sortable[Int64]  = Int64(0)
	_ Sortable[Uint64] = Uint64(0)
	_ Sortable[Byte]   = Byte(0)
	_ Sortable[String] = String("")
)

func (i Int) Equals(other Int) bool   { return i == other }
func (i Int) LessThan(other Int) bool { return i < other }

func (i Int64) Equals(other Int64) bool   { return i == other }
func (i Int64) LessThan(other Int64) bool { return i < other }

func (u Uint64) Equals(other Uint64) bool   { return u == other }
func (u Uint64) LessThan(other Uint64) bool { return u < other }

func (b Byte) Equals(other Byte) bool   { return b == other }
func (b Byte) LessThan(other Byte) bool { return b < other }

func (s String) Equals(other String) bool   { return s == other }
func (s String) LessThan(other String) bool { return s < other }
