// Package analysis contains project-local analyzers used by the staticlint
// multichecker.
package analysis

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// ExitMainAnalyzer reports direct os.Exit calls in the main function of
// package main, where they skip deferred cleanup.
var ExitMainAnalyzer = &analysis.Analyzer{
	Name: "exitmain",
	Doc:  "check for direct os.Exit calls in func main of package main",
	Run:  runExitMain,
}

func runExitMain(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if file.Name.Name != "main" {
			continue
		}
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" {
				continue
			}
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == "os" && sel.Sel.Name == "Exit" {
					pass.Reportf(call.Pos(), "os.Exit call in main func of main package")
				}
				return true
			})
		}
	}
	return nil, nil
}
