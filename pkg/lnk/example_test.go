package lnk_test

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

func ExampleDecode() {
	data := testutil.Sample().Bytes()

	link, err := lnk.Decode(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range []lnk.Field{lnk.FieldPathFile, lnk.FieldDriveType, lnk.FieldIcon} {
		v, _ := lnk.Extract(link, f, nil)
		fmt.Printf("%s: %s\n", f, v)
	}
	// Output:
	// PF: C:\Program Files\App\app.exe
	// VT: DRIVE_FIXED
	// I: C:\Windows\icon.dll,7
}
