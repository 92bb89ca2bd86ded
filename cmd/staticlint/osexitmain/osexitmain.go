// Package osexitmain defines an analyzer that reports process-terminating
// calls made directly in main.main.
//
// Commands in this repository compute their exit status in run and hand it to
// an exit function variable, so deferred log flushing always happens first.
package osexitmain

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer is the osexitmain analyzer.
var Analyzer = &analysis.Analyzer{
	Name:     "osexitmain",
	Doc:      "reports direct os.Exit and log.Fatal calls in main.main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// terminating lists the functions that end the process without running defers.
var terminating = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("failed to assert type: expected *inspector.Inspector")
	}

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fd, ok := n.(*ast.FuncDecl)
		if !ok || fd.Recv != nil || fd.Name == nil || fd.Name.Name != "main" || fd.Body == nil {
			return
		}

		ast.Inspect(fd.Body, func(nn ast.Node) bool {
			switch x := nn.(type) {
			case *ast.FuncLit:
				return false
			case *ast.CallExpr:
				if fn := terminatingCall(pass, x); fn != nil {
					pass.Reportf(x.Pos(), "%s.%s called directly in main; return an exit code from run instead",
						fn.Pkg().Name(), fn.Name())
				}
			}
			return true
		})
	})

	return nil, nil
}

// terminatingCall returns the called function when call ends the process.
func terminatingCall(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	if call == nil || call.Fun == nil {
		return nil
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel == nil {
		return nil
	}

	if pass.TypesInfo == nil || pass.TypesInfo.Uses == nil {
		return nil
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return nil
	}
	if !terminating[fn.Pkg().Path()][fn.Name()] {
		return nil
	}
	return fn
}
