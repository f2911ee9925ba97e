// Package selftest carries the built-in acceptance corpus for the detection
// engine. Run is pure; rendering and exit codes belong to the CLI.
package selftest

import "guesslex/pkg/classifier"

// Case is one corpus entry. WantFramework is checked only when non-empty.
type Case struct {
	Name          string
	Code          string
	Filename      string
	WantLanguage  string
	WantFramework string
}

// CaseResult pairs a case with the engine's verdict.
type CaseResult struct {
	Case   Case
	Result classifier.Result
	Passed bool
}

// Summary counts the corpus outcome.
type Summary struct {
	Passed int
	Total  int
}

// Cases returns the built-in corpus.
func Cases() []Case {
	return []Case{
		{
			Name:         "python function",
			Code:         "def calculate_sum(a: int, b: int) -> int:\n    return a + b\n\nif __name__ == '__main__':\n    print(calculate_sum(5, 3))",
			Filename:     "test.py",
			WantLanguage: "python",
		},
		{
			Name:         "javascript es6",
			Code:         "const greeting = (name) => {\n    console.log(`Hello, ${name}!`);\n};\n\ngreeting('World');",
			Filename:     "test.js",
			WantLanguage: "javascript",
		},
		{
			Name:          "react component",
			Code:          "import React, { useState } from 'react';\n\nfunction Counter() {\n    const [count, setCount] = useState(0);\n    return <div onClick={() => setCount(count + 1)}>{count}</div>;\n}",
			Filename:      "Counter.jsx",
			WantLanguage:  "javascript",
			WantFramework: "react",
		},
		{
			Name:         "typescript interface",
			Code:         "interface User {\n    id: number;\n    name: string;\n    email?: string;\n}\n\nfunction getUser(id: number): User {\n    return { id, name: 'John' };\n}",
			Filename:     "user.ts",
			WantLanguage: "typescript",
		},
		{
			Name:          "django model",
			Code:          "from django.db import models\nfrom django.contrib.auth.models import User\n\nclass Post(models.Model):\n    title = models.CharField(max_length=200)\n    author = models.ForeignKey(User, on_delete=models.CASCADE)\n    created_at = models.DateTimeField(auto_now_add=True)",
			Filename:      "models.py",
			WantLanguage:  "python",
			WantFramework: "django",
		},
		{
			Name:         "java class",
			Code:         "public class Calculator {\n    public static void main(String[] args) {\n        System.out.println(\"Hello World\");\n    }\n\n    public int add(int a, int b) {\n        return a + b;\n    }\n}",
			Filename:     "Calculator.java",
			WantLanguage: "java",
		},
		{
			Name:         "go program",
			Code:         "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			Filename:     "main.go",
			WantLanguage: "go",
		},
		{
			Name:         "rust program",
			Code:         "fn main() {\n    let x = 5;\n    println!(\"{}\", x);\n}",
			Filename:     "main.rs",
			WantLanguage: "rust",
		},
		{
			Name:         "sql query",
			Code:         "SELECT id, name FROM users WHERE id = 1;",
			Filename:     "query.sql",
			WantLanguage: "sql",
		},
		{
			Name:         "html document",
			Code:         "<!DOCTYPE html>\n<html>\n<head><title>x</title></head>\n<body><div>hello</div></body>\n</html>",
			Filename:     "index.html",
			WantLanguage: "html",
		},
	}
}

// Run executes every case against the engine.
func Run(engine *classifier.Engine) ([]CaseResult, Summary) {
	cases := Cases()
	results := make([]CaseResult, 0, len(cases))
	summary := Summary{Total: len(cases)}

	for _, c := range cases {
		res := engine.Analyze(c.Code, c.Filename)
		passed := res.Language == c.WantLanguage
		if c.WantFramework != "" && res.Framework != c.WantFramework {
			passed = false
		}
		if passed {
			summary.Passed++
		}
		results = append(results, CaseResult{Case: c, Result: res, Passed: passed})
	}
	return results, summary
}
