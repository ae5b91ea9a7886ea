package bindings

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
)

// OwnerProxyMetaData contains the ABI of the OwnerProxy contract.
var OwnerProxyMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"owner_\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false}]",
	ID:  "OwnerProxy",
}

// OpenAvatarGen0AssetsMetaData contains the ABI of the OpenAvatarGen0Assets contract.
var OpenAvatarGen0AssetsMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getNumPaletteCodes\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getNumPalettes\",\"inputs\":[{\"name\":\"code\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"uploadPaletteBatches\",\"inputs\":[{\"name\":\"batches\",\"type\":\"tuple[]\",\"internalType\":\"struct UploadPaletteBatchInput[]\",\"components\":[{\"name\":\"code\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"fromIndex\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"palettes\",\"type\":\"bytes4[][]\",\"internalType\":\"bytes4[][]\"}]}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"hasCanvas\",\"inputs\":[{\"name\":\"id\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"outputs\":[{\"name\":\"\",\"type\":\"bool\",\"internalType\":\"bool\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"addCanvas\",\"inputs\":[{\"name\":\"header\",\"type\":\"tuple\",\"internalType\":\"struct CanvasHeader\",\"components\":[{\"name\":\"id\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"width\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"height\",\"type\":\"uint8\",\"internalType\":\"uint8\"}]}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"getNumLayers\",\"inputs\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"addLayers\",\"inputs\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"layers\",\"type\":\"uint8[]\",\"internalType\":\"uint8[]\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"getNumPatterns\",\"inputs\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"layer\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"uploadPatterns\",\"inputs\":[{\"name\":\"inputs\",\"type\":\"tuple[]\",\"internalType\":\"struct UploadPatternInput[]\",\"components\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"layer\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"index\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"width\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"height\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"offsetX\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"offsetY\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"paletteCode\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"data\",\"type\":\"bytes\",\"internalType\":\"bytes\"}]}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"PaletteUpload\",\"inputs\":[{\"name\":\"code\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"index\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"CanvasAdd\",\"inputs\":[{\"name\":\"id\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"LayerAdd\",\"inputs\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"layer\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"PatternUpload\",\"inputs\":[{\"name\":\"canvasId\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"layer\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"index\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0Assets",
}

// OpenAvatarGen0RendererMetaData contains the ABI of the OpenAvatarGen0Renderer contract.
var OpenAvatarGen0RendererMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getOpenAvatarGen0Assets\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"addr\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0Renderer",
}

// OpenAvatarGen0RendererRegistryMetaData contains the ABI of the OpenAvatarGen0RendererRegistry contract.
var OpenAvatarGen0RendererRegistryMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getOpenAvatarGen0TextRecords\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"addr\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getNumRenderers\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"addRenderer\",\"inputs\":[{\"name\":\"key\",\"type\":\"string\",\"internalType\":\"string\"},{\"name\":\"renderer\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"getRendererByKey\",\"inputs\":[{\"name\":\"key\",\"type\":\"string\",\"internalType\":\"string\"}],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getDefaultRenderer\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"setDefaultRendererByKey\",\"inputs\":[{\"name\":\"key\",\"type\":\"string\",\"internalType\":\"string\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"RendererAdd\",\"inputs\":[{\"name\":\"key\",\"type\":\"string\",\"internalType\":\"string\"},{\"name\":\"renderer\",\"type\":\"address\",\"internalType\":\"address\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"DefaultRendererChange\",\"inputs\":[{\"name\":\"key\",\"type\":\"string\",\"internalType\":\"string\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0RendererRegistry",
}

// OpenAvatarGen0TokenMetaData contains the ABI of the OpenAvatarGen0Token contract.
var OpenAvatarGen0TokenMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getOpenAvatarGen0RendererRegistry\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"addr\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"supplySoftCap\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint16\",\"internalType\":\"uint16\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"increaseSupplySoftCap\",\"inputs\":[{\"name\":\"amount\",\"type\":\"uint16\",\"internalType\":\"uint16\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"totalSupply\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getMintPrice\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"setMintPrice\",\"inputs\":[{\"name\":\"val\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"getMintState\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"setMintState\",\"inputs\":[{\"name\":\"val\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"SupplySoftCapChange\",\"inputs\":[{\"name\":\"newSupplySoftCap\",\"type\":\"uint16\",\"internalType\":\"uint16\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"MintPriceChange\",\"inputs\":[{\"name\":\"oldPrice\",\"type\":\"uint256\",\"internalType\":\"uint256\"},{\"name\":\"newPrice\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"MintStateChange\",\"inputs\":[{\"name\":\"oldState\",\"type\":\"uint8\",\"internalType\":\"uint8\"},{\"name\":\"newState\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0Token",
}

// OpenAvatarGen0TextRecordsMetaData contains the ABI of the OpenAvatarGen0TextRecords contract.
var OpenAvatarGen0TextRecordsMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getOpenAvatarGen0Token\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"addr\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0TextRecords",
}

// OpenAvatarGen0ProfilePictureRendererMetaData contains the ABI of the OpenAvatarGen0ProfilePictureRenderer contract.
var OpenAvatarGen0ProfilePictureRendererMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"isInitialized\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"bool\",\"internalType\":\"bool\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"openAvatarGen0Assets_\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"openAvatarGen0Renderer_\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"openAvatarGen0Token_\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"openAvatarGen0TextRecords_\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0ProfilePictureRenderer",
}

// OpenAvatarGen0ExampleMutableCanvasRendererMetaData contains the ABI of the OpenAvatarGen0ExampleMutableCanvasRenderer contract.
var OpenAvatarGen0ExampleMutableCanvasRendererMetaData = bind.MetaData{
	ABI: "[{\"type\":\"constructor\",\"inputs\":[{\"name\":\"ownerProxy\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"owner\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"transferOwnership\",\"inputs\":[{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"OwnershipTransferred\",\"inputs\":[{\"name\":\"previousOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true},{\"name\":\"newOwner\",\"type\":\"address\",\"internalType\":\"address\",\"indexed\":true}],\"anonymous\":false},{\"type\":\"function\",\"name\":\"getOpenAvatarGen0Assets\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"initialize\",\"inputs\":[{\"name\":\"addr\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[],\"stateMutability\":\"nonpayable\"},{\"type\":\"event\",\"name\":\"Initialized\",\"inputs\":[{\"name\":\"version\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"anonymous\":false}]",
	ID:  "OpenAvatarGen0ExampleMutableCanvasRenderer",
}

// Contract is a Go binding around one of the OpenAvatar contracts. Calls
// are packed and unpacked by method name.
type Contract struct {
	name string
	abi  abi.ABI
}

func newContract(name string, md *bind.MetaData) *Contract {
	parsed, err := md.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &Contract{name: name, abi: *parsed}
}

// Name returns the contract name
func (c *Contract) Name() string {
	return c.name
}

// ABI returns the parsed ABI
func (c *Contract) ABI() *abi.ABI {
	return &c.abi
}

// TryPack packs a call to method, returning an error if the inputs are invalid.
func (c *Contract) TryPack(method string, args ...any) ([]byte, error) {
	if _, ok := c.abi.Methods[method]; !ok {
		return nil, fmt.Errorf("%s has no method %s", c.name, method)
	}
	return c.abi.Pack(method, args...)
}

// Unpack decodes the return data of method
func (c *Contract) Unpack(method string, data []byte) ([]any, error) {
	return c.abi.Unpack(method, data)
}

// EventName resolves a log topic to one of the contract's event names
func (c *Contract) EventName(topic0 [32]byte) (string, bool) {
	for name, ev := range c.abi.Events {
		if ev.ID == topic0 {
			return name, true
		}
	}
	return "", false
}

// NewOwnerProxy creates a binding for the OwnerProxy contract.
func NewOwnerProxy() *Contract {
	return newContract("OwnerProxy", &OwnerProxyMetaData)
}

// NewOpenAvatarGen0Assets creates a binding for the OpenAvatarGen0Assets contract.
func NewOpenAvatarGen0Assets() *Contract {
	return newContract("OpenAvatarGen0Assets", &OpenAvatarGen0AssetsMetaData)
}

// NewOpenAvatarGen0Renderer creates a binding for the OpenAvatarGen0Renderer contract.
func NewOpenAvatarGen0Renderer() *Contract {
	return newContract("OpenAvatarGen0Renderer", &OpenAvatarGen0RendererMetaData)
}

// NewOpenAvatarGen0RendererRegistry creates a binding for the OpenAvatarGen0RendererRegistry contract.
func NewOpenAvatarGen0RendererRegistry() *Contract {
	return newContract("OpenAvatarGen0RendererRegistry", &OpenAvatarGen0RendererRegistryMetaData)
}

// NewOpenAvatarGen0Token creates a binding for the OpenAvatarGen0Token contract.
func NewOpenAvatarGen0Token() *Contract {
	return newContract("OpenAvatarGen0Token", &OpenAvatarGen0TokenMetaData)
}

// NewOpenAvatarGen0TextRecords creates a binding for the OpenAvatarGen0TextRecords contract.
func NewOpenAvatarGen0TextRecords() *Contract {
	return newContract("OpenAvatarGen0TextRecords", &OpenAvatarGen0TextRecordsMetaData)
}

// NewOpenAvatarGen0ProfilePictureRenderer creates a binding for the OpenAvatarGen0ProfilePictureRenderer contract.
func NewOpenAvatarGen0ProfilePictureRenderer() *Contract {
	return newContract("OpenAvatarGen0ProfilePictureRenderer", &OpenAvatarGen0ProfilePictureRendererMetaData)
}

// NewOpenAvatarGen0ExampleMutableCanvasRenderer creates a binding for the OpenAvatarGen0ExampleMutableCanvasRenderer contract.
func NewOpenAvatarGen0ExampleMutableCanvasRenderer() *Contract {
	return newContract("OpenAvatarGen0ExampleMutableCanvasRenderer", &OpenAvatarGen0ExampleMutableCanvasRendererMetaData)
}
