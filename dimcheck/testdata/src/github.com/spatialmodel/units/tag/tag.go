package tag

type Dim interface{ Dims() [7]int }

type (
	Dimensionless struct{}
	Time          struct{}
	Length        struct{}
	Mass          struct{}
)

func (Dimensionless) Dims() [7]int { return [7]int{} }
func (Time) Dims() [7]int          { return [7]int{0: 1} }
func (Length) Dims() [7]int        { return [7]int{1: 1} }
func (Mass) Dims() [7]int          { return [7]int{2: 1} }

type Mul[A, B Dim] struct{}

func (Mul[A, B]) Dims() [7]int { return [7]int{} }

type Div[A, B Dim] struct{}

func (Div[A, B]) Dims() [7]int { return [7]int{} }

type Inv[A Dim] struct{}

func (Inv[A]) Dims() [7]int { return [7]int{} }

type Square[A Dim] struct{}

func (Square[A]) Dims() [7]int { return [7]int{} }

type (
	Frequency    = Inv[Time]
	Area         = Square[Length]
	Velocity     = Div[Length, Time]
	Acceleration = Div[Velocity, Time]
	Force        = Mul[Mass, Acceleration]
)
