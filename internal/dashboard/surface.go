package dashboard

// Field names one display slot on the rendering surface.
type Field int

const (
	FieldStatus Field = iota
	FieldBlockHeight
	FieldGasPrice
	FieldBalance
	FieldWalletAddress
	FieldReceiveAddress
)

// Fields lists every slot in display order.
var Fields = []Field{
	FieldStatus,
	FieldBlockHeight,
	FieldGasPrice,
	FieldBalance,
	FieldWalletAddress,
	FieldReceiveAddress,
}

func (f Field) String() string {
	switch f {
	case FieldStatus:
		return "Status"
	case FieldBlockHeight:
		return "Block"
	case FieldGasPrice:
		return "Gas Price"
	case FieldBalance:
		return "Balance"
	case FieldWalletAddress:
		return "Wallet"
	case FieldReceiveAddress:
		return "Receive"
	default:
		return "?"
	}
}

// Surface is where the controller writes display text.
type Surface interface {
	Set(field Field, text string)
}

// BatchSurface is implemented by surfaces that can apply several fields
// at once. The controller uses it so a poll result never shows up half
// written.
type BatchSurface interface {
	Surface
	SetAll(values map[Field]string)
}

// Notifier shows a one-off message to the user.
type Notifier interface {
	Notify(msg string)
}

func setAll(s Surface, values map[Field]string) {
	if b, ok := s.(BatchSurface); ok {
		b.SetAll(values)
		return
	}
	for _, f := range Fields {
		if v, ok := values[f]; ok {
			s.Set(f, v)
		}
	}
}
