package macros

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wade/wasm/procmacro"
)

func TestPrintDecls(t *testing.T) {
	decls := []procmacro.Decl{
		{Kind: procmacro.KindDerive, Name: "Serialize", Func: "derive_serialize", Attributes: []string{"serde", "rename"}},
		{Kind: procmacro.KindAttr, Name: "my_attr", Func: "my_attr_impl"},
		{Kind: procmacro.KindBang, Name: "my_macro", Func: "my_macro_impl"},
	}

	var out bytes.Buffer
	require.NoError(t, printDecls(&out, decls))
	require.Equal(t,
		"derive Serialize: derive_serialize (attributes: serde, rename)\n"+
			"attr my_attr: my_attr_impl\n"+
			"bang my_macro: my_macro_impl\n",
		out.String())
}

func TestPrintDeclsEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printDecls(&out, nil))
	require.Equal(t, "no proc-macro declarations\n", out.String())
}

func TestDumpCSV(t *testing.T) {
	decls := []procmacro.Decl{
		{Kind: procmacro.KindDerive, Name: "Serialize", Func: "derive_serialize", Attributes: []string{"serde", "rename"}},
		{Kind: procmacro.KindBang, Name: "my_macro", Func: "my_macro_impl"},
	}

	var out bytes.Buffer
	require.NoError(t, dumpCSV(&out, decls))
	require.Equal(t,
		"kind,name,func,attributes\n"+
			"derive,Serialize,derive_serialize,\"serde,rename\"\n"+
			"bang,my_macro,my_macro_impl,\n",
		out.String())
}
