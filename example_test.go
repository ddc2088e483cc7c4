package cwkit_test

import (
	"fmt"

	cwkit "github.com/cwkit/cwkit-go"
	"github.com/cwkit/cwkit-go/cw"
)

func Example() {
	type order struct {
		Price  string `json:"price"`
		Amount string `json:"amount"`
	}

	// Both parties know the phrase and the sender's address.
	sender := cw.MockApi().AddrMake("alice")
	key, err := cwkit.CalcHashBytes("correct horse battery staple", cwkit.AddressToSalt(sender.String()))
	if err != nil {
		panic(err)
	}

	env := cw.MockEnv()
	resp, err := cwkit.SerializeEncrypt(key, env.Block.Time, order{Price: "1.5", Amount: "100"})
	if err != nil {
		panic(err)
	}

	got, err := cwkit.DecryptDeserialize[order](key, resp.Timestamp, resp.Value)
	if err != nil {
		panic(err)
	}

	fmt.Println(got.Price, got.Amount)
	fmt.Println(resp.Timestamp.Nanos())
	// Output:
	// 1.5 100
	// 1571797419879305533
}

func ExampleHash_ToNormDec() {
	h, err := cwkit.ParseHash("8000000000000000000000000000000000000000000000000000000000000000")
	if err != nil {
		panic(err)
	}
	fmt.Println(h.ToNormDec())
	// Output: 0.5
}
