package bitcoin

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScriptDecoder interprets raw script hex for display.
	ScriptDecoder interface {
		decodeLockingScript(scriptHex string) (lockingScript, error)
		decodeUnlockingScript(scriptHex string) (string, error)
	}
)

// lockingScript is the display form of an output script.
type lockingScript struct {
	class     string
	asm       string
	addresses []string
}
