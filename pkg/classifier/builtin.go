package classifier

// Built-in signature table. Entries encode tuned domain knowledge; changing
// a weight or pattern shifts scores for every caller, so edits here need the
// regression suite run against the self-test corpus.

var builtinLanguages = []LanguageSignature{
	{
		Name:     "python",
		Keywords: []string{"def", "class", "import", "from", "if __name__", "elif", "lambda", "yield"},
		Patterns: []string{
			`^\s*def\s+\w+\s*\(`,
			`^\s*class\s+\w+`,
			`^\s*import\s+\w+`,
			`^\s*from\s+\w+\s+import`,
			`if\s+__name__\s*==\s*['"]__main__['"]`,
			`^\s*#.*python`,
			`print\s*\(`,
			`^\s*@\w+`,
		},
		// An import with a from-clause is the ES6 module shape, not Python's.
		AntiPatterns: []string{`console\.log`, `function\s*\(`, `var\s+\w+`, `import\s+.*\s+from\s+['"]`},
		Weight:       1.0,
	},
	{
		Name:     "javascript",
		Keywords: []string{"function", "var", "let", "const", "console.log", "require", "module.exports"},
		Patterns: []string{
			`function\s+\w+\s*\(`,
			`console\.log\s*\(`,
			`var\s+\w+\s*=`,
			`let\s+\w+\s*=`,
			`const\s+\w+\s*=`,
			`require\s*\(['"]`,
			`import\s+.*\s+from\s+['"]`,
			`module\.exports`,
			`=>`,
			`\.then\s*\(`,
			`async\s+function`,
		},
		// Only Python-shaped imports count against JavaScript: the from-import
		// form and a bare "import name" line. ES6 imports carry a from-clause
		// and never match either.
		AntiPatterns: []string{`def\s+\w+`, `class\s+\w+.*:`, `^\s*from\s+\w+(\.\w+)*\s+import`, `^\s*import\s+\w+\s*$`},
		Weight:       1.0,
	},
	{
		Name:     "typescript",
		Keywords: []string{"interface", "type", "enum", "namespace", "declare"},
		Patterns: []string{
			`interface\s+\w+`,
			`type\s+\w+\s*=`,
			`enum\s+\w+`,
			`:\s*\w+(\[\])?(\s*\|\s*\w+)*\s*[=;]`,
			`<\w+>`,
			`declare\s+`,
			`namespace\s+\w+`,
		},
		Weight: 1.2,
	},
	{
		Name:     "java",
		Keywords: []string{"public class", "private", "protected", "static", "void", "import java"},
		Patterns: []string{
			`public\s+class\s+\w+`,
			`private\s+\w+\s+\w+`,
			`protected\s+\w+\s+\w+`,
			`public\s+static\s+void\s+main`,
			`import\s+java\.`,
			`@\w+\s*\n\s*public`,
			`System\.out\.println`,
		},
		AntiPatterns: []string{`def\s+\w+`, `function\s+\w+`},
		Weight:       1.0,
	},
	{
		Name:     "csharp",
		Keywords: []string{"using", "namespace", "class", "static void Main", "public", "private"},
		Patterns: []string{
			`using\s+\w+;`,
			`namespace\s+\w+`,
			`public\s+class\s+\w+`,
			`static\s+void\s+Main`,
			`Console\.WriteLine`,
			`\[assembly:`,
			`#region`,
		},
		AntiPatterns: []string{`import\s+`, `def\s+\w+`},
		Weight:       1.0,
	},
	{
		Name:     "cpp",
		Keywords: []string{"#include", "using namespace", "int main", "std::", "class"},
		Patterns: []string{
			`#include\s*<\w+>`,
			`using\s+namespace\s+std`,
			`int\s+main\s*\(`,
			`std::\w+`,
			`cout\s*<<`,
			`cin\s*>>`,
			`class\s+\w+\s*{`,
		},
		AntiPatterns: []string{`def\s+\w+`, `import\s+`},
		Weight:       1.0,
	},
	{
		Name:     "c",
		Keywords: []string{"#include", "int main", "printf", "scanf", "malloc"},
		Patterns: []string{
			`#include\s*<\w+\.h>`,
			`int\s+main\s*\(`,
			`printf\s*\(`,
			`scanf\s*\(`,
			`malloc\s*\(`,
			`free\s*\(`,
		},
		AntiPatterns: []string{`class\s+\w+`, `using\s+namespace`, `def\s+\w+`},
		Weight:       1.0,
	},
	{
		Name:     "go",
		Keywords: []string{"package", "import", "func", "var", "const", "type"},
		Patterns: []string{
			`package\s+\w+`,
			`import\s*\(`,
			`func\s+\w+\s*\(`,
			`func\s+main\s*\(\s*\)`,
			`fmt\.Print`,
			`:=`,
			`go\s+\w+\(`,
		},
		AntiPatterns: []string{`def\s+\w+`, `class\s+\w+`},
		Weight:       1.0,
	},
	{
		Name:     "rust",
		Keywords: []string{"fn", "let", "mut", "impl", "trait", "use"},
		Patterns: []string{
			`fn\s+\w+\s*\(`,
			`let\s+\w+\s*=`,
			`let\s+mut\s+\w+`,
			`impl\s+\w+`,
			`trait\s+\w+`,
			`use\s+\w+::`,
			`println!\s*\(`,
			`#\[derive\(`,
		},
		AntiPatterns: []string{
			`def\s+\w+`, `function\s+\w+`, `import\s+['"]package:`,
			`class\s+\w+\s+extends`, `StatelessWidget`, `StatefulWidget`,
		},
		Weight: 1.0,
	},
	{
		Name:     "ruby",
		Keywords: []string{"def", "class", "end", "require", "puts", "attr_accessor"},
		Patterns: []string{
			`def\s+\w+`,
			`class\s+\w+`,
			`end\s*$`,
			`require\s+['"]`,
			`puts\s+`,
			`attr_accessor\s+`,
			`@\w+`,
			`=>\s*`,
		},
		AntiPatterns: []string{`def\s+\w+\s*\(.*\):`, `import\s+`},
		Weight:       1.0,
	},
	{
		Name:     "php",
		Keywords: []string{"<?php", "function", "class", "echo", "$", "require_once"},
		Patterns: []string{
			`<\?php`,
			`function\s+\w+\s*\(`,
			`class\s+\w+`,
			`echo\s+`,
			`\$\w+`,
			`require_once\s+`,
			`->\w+`,
			`public\s+function`,
		},
		AntiPatterns: []string{`def\s+\w+`, `import\s+`},
		Weight:       1.0,
	},
	{
		Name:     "swift",
		Keywords: []string{"func", "var", "let", "import", "class", "struct"},
		Patterns: []string{
			`func\s+\w+\s*\(`,
			`var\s+\w+\s*:`,
			`let\s+\w+\s*=`,
			`import\s+\w+`,
			`class\s+\w+\s*:`,
			`struct\s+\w+`,
			`print\s*\(`,
			`@\w+\s*\n`,
		},
		AntiPatterns: []string{
			`def\s+\w+`, `function\s+\w+`, `import\s+['"]package:`,
			`StatelessWidget`, `StatefulWidget`,
		},
		Weight: 1.0,
	},
	{
		Name:     "kotlin",
		Keywords: []string{"fun", "val", "var", "class", "object", "package"},
		Patterns: []string{
			`fun\s+\w+\s*\(`,
			`val\s+\w+\s*=`,
			`var\s+\w+\s*=`,
			`class\s+\w+`,
			`object\s+\w+`,
			`package\s+\w+`,
			`println\s*\(`,
		},
		AntiPatterns: []string{
			`def\s+\w+`, `function\s+\w+`, `import\s+['"]package:`,
			`StatelessWidget`, `StatefulWidget`,
		},
		Weight: 1.0,
	},
	{
		Name:     "sql",
		Keywords: []string{"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE", "CREATE"},
		Patterns: []string{
			`SELECT\s+.*FROM`,
			`INSERT\s+INTO`,
			`UPDATE\s+\w+\s+SET`,
			`DELETE\s+FROM`,
			`CREATE\s+TABLE`,
			`ALTER\s+TABLE`,
			`DROP\s+TABLE`,
			`WHERE\s+\w+\s*=`,
		},
		AntiPatterns: []string{`def\s+\w+`, `function\s+\w+`, `class\s+\w+`},
		Weight:       1.0,
	},
	{
		Name:     "html",
		Keywords: []string{"<html>", "<head>", "<body>", "<div>", "<script>"},
		Patterns: []string{
			`<!DOCTYPE\s+html>`,
			`<html.*>`,
			`<head>`,
			`<body.*>`,
			`<div.*>`,
			`<script.*>`,
			`<link\s+.*rel=`,
			`<meta\s+.*>`,
		},
		// RE2 has no lookahead; the original penalized "function <name>" not
		// followed by a call, which an assignment form approximates.
		AntiPatterns: []string{`def\s+\w+`, `function\s+\w+\s*=`},
		Weight:       1.0,
	},
	{
		Name:     "css",
		Keywords: []string{"{", "}", ":", ";", "@media", "@import"},
		Patterns: []string{
			`\w+\s*\{[^}]*\}`,
			`@media\s*\(`,
			`@import\s+`,
			`#\w+\s*\{`,
			`\.\w+\s*\{`,
			`:\w+\s*\{`,
			`\w+:\s*\w+;`,
		},
		// Approximates the original's "class not opening a block" lookahead.
		AntiPatterns: []string{`def\s+\w+`, `function\s+\w+`, `class\s+\w+\s*[(:]`},
		Weight:       1.0,
	},
	{
		Name: "dart",
		Keywords: []string{
			"void", "main", "class", "import", "library", "part",
			"abstract", "extends", "implements",
		},
		Patterns: []string{
			`void\s+main\s*\(\s*\)`,
			`import\s+['"]package:`,
			`import\s+['"]dart:`,
			`class\s+\w+\s+extends\s+\w+`,
			`class\s+\w+\s+implements\s+\w+`,
			`abstract\s+class\s+\w+`,
			`library\s+\w+;`,
			`part\s+of\s+\w+;`,
			`part\s+['"][^'"]+\.dart['"];`,
			`@override`,
			`final\s+\w+`,
			`const\s+\w+`,
			`var\s+\w+\s*=`,
			`\w+\?\s+\w+`,
			`\w+<\w+>`,
			`List<\w+>`,
			`Map<\w+,\s*\w+>`,
			`Set<\w+>`,
			`Future<\w+>`,
			`Stream<\w+>`,
			`async\s*\{`,
			`await\s+\w+`,
			`=>\s*\w+`,
			`print\s*\(`,
		},
		AntiPatterns: []string{`def\s+\w+`, `function\s+\w+`, `console\.log`, `System\.out\.println`},
		Weight:       1.0,
	},
}

var builtinFrameworks = []FrameworkSignature{
	{
		Name:     "react",
		Language: "javascript",
		Patterns: []string{
			`import\s+.*from\s+['"]react['"]`,
			`React\.Component`,
			`useState\s*\(`,
			`useEffect\s*\(`,
			`jsx`,
			`className=`,
			`<\w+.*>.*</\w+>`,
			`return\s*\(`,
		},
		Keywords: []string{"React", "useState", "useEffect", "Component", "jsx"},
		Weight:   1.2,
	},
	{
		Name:     "vue",
		Language: "javascript",
		Patterns: []string{
			`import\s+.*from\s+['"]vue['"]`,
			`Vue\.component`,
			`<template>`,
			`<script>`,
			`v-if=`,
			`v-for=`,
			`@click=`,
		},
		Keywords: []string{"Vue", "template", "v-if", "v-for"},
		Weight:   1.2,
	},
	{
		Name:     "angular",
		Language: "typescript",
		Patterns: []string{
			`import\s+.*from\s+['"]@angular`,
			`@Component\s*\(`,
			`@Injectable\s*\(`,
			`@NgModule\s*\(`,
			`selector:\s*['"]`,
			`templateUrl:\s*['"]`,
		},
		Keywords: []string{"@Component", "@Injectable", "@NgModule", "Angular"},
		Weight:   1.2,
	},
	{
		Name:     "django",
		Language: "python",
		Patterns: []string{
			`from\s+django`,
			`import\s+django`,
			`models\.Model`,
			`HttpResponse`,
			`render\s*\(`,
			`urlpatterns\s*=`,
			`@login_required`,
		},
		Keywords: []string{"django", "models", "HttpResponse", "urlpatterns"},
		Weight:   1.2,
	},
	{
		Name:     "flask",
		Language: "python",
		Patterns: []string{
			`from\s+flask`,
			`import\s+flask`,
			`Flask\s*\(`,
			`@app\.route`,
			`render_template\s*\(`,
			`request\.form`,
		},
		Keywords: []string{"Flask", "@app.route", "render_template"},
		Weight:   1.2,
	},
	{
		Name:     "fastapi",
		Language: "python",
		Patterns: []string{
			`from\s+fastapi`,
			`import\s+fastapi`,
			`FastAPI\s*\(`,
			`@app\.(get|post|put|delete)`,
			`Pydantic`,
			`BaseModel`,
		},
		Keywords: []string{"FastAPI", "Pydantic", "BaseModel"},
		Weight:   1.2,
	},
	{
		Name:     "express",
		Language: "javascript",
		Patterns: []string{
			`require\s*\(['"]express['"]`,
			`import\s+.*from\s+['"]express['"]`,
			`app\.get\s*\(`,
			`app\.post\s*\(`,
			`app\.listen\s*\(`,
			`express\s*\(\s*\)`,
		},
		Keywords: []string{"express", "app.get", "app.post", "app.listen"},
		Weight:   1.2,
	},
	{
		Name:     "spring",
		Language: "java",
		Patterns: []string{
			`import\s+org\.springframework`,
			`@RestController`,
			`@Service`,
			`@Repository`,
			`@Autowired`,
			`@RequestMapping`,
			`@GetMapping`,
		},
		Keywords: []string{"@RestController", "@Service", "@Autowired", "springframework"},
		Weight:   1.2,
	},
	{
		Name:     "flutter",
		Language: "dart",
		Patterns: []string{
			`import\s+['"]package:flutter/`,
			`import\s+['"]package:flutter/material\.dart['"]`,
			`import\s+['"]package:flutter/cupertino\.dart['"]`,
			`import\s+['"]package:flutter/widgets\.dart['"]`,
			`class\s+\w+\s+extends\s+StatelessWidget`,
			`class\s+\w+\s+extends\s+StatefulWidget`,
			`class\s+\w+\s+extends\s+State<\w+>`,
			`Widget\s+build\s*\(`,
			`@override\s+Widget\s+build`,
			`MaterialApp\s*\(`,
			`CupertinoApp\s*\(`,
			`Scaffold\s*\(`,
			`AppBar\s*\(`,
			`Container\s*\(`,
			`Column\s*\(`,
			`Row\s*\(`,
			`Text\s*\(`,
			`ElevatedButton\s*\(`,
			`TextButton\s*\(`,
			`OutlinedButton\s*\(`,
			`RaisedButton\s*\(`,
			`FloatingActionButton\s*\(`,
			`ListView\s*\(`,
			`GridView\s*\(`,
			`Stack\s*\(`,
			`Positioned\s*\(`,
			`Padding\s*\(`,
			`Margin\s*\(`,
			`SizedBox\s*\(`,
			`Expanded\s*\(`,
			`Flexible\s*\(`,
			`Navigator\.\w+`,
			`setState\s*\(`,
			`initState\s*\(`,
			`dispose\s*\(`,
			`didChangeDependencies\s*\(`,
			`runApp\s*\(`,
			`MaterialPageRoute\s*\(`,
			`CupertinoPageRoute\s*\(`,
			`Theme\.\w+`,
			`MediaQuery\.\w+`,
			`ValueNotifier<\w+>`,
			`ValueListenableBuilder<\w+>`,
			`StreamBuilder<\w+>`,
			`FutureBuilder<\w+>`,
			`AnimationController\s*\(`,
			`SingleTickerProviderStateMixin`,
			`TickerProviderStateMixin`,
			`GestureDetector\s*\(`,
			`InkWell\s*\(`,
			`onTap:\s*\(`,
			`onPressed:\s*\(`,
			`CrossAxisAlignment\.\w+`,
			`MainAxisAlignment\.\w+`,
			`TextAlign\.\w+`,
			`FontWeight\.\w+`,
			`Colors\.\w+`,
			`Icons\.\w+`,
			`EdgeInsets\.\w+`,
			`BorderRadius\.\w+`,
			`BoxDecoration\s*\(`,
			`Decoration\s*\(`,
		},
		Keywords: []string{
			"Flutter", "StatelessWidget", "StatefulWidget", "Widget", "build",
			"MaterialApp", "CupertinoApp", "Scaffold", "AppBar", "Container",
			"Column", "Row", "Text", "ElevatedButton", "FloatingActionButton",
			"ListView", "GridView", "Stack", "Positioned", "Navigator",
			"setState", "initState", "dispose", "runApp", "Theme", "MediaQuery",
			"StreamBuilder", "FutureBuilder", "AnimationController", "GestureDetector",
			"CrossAxisAlignment", "MainAxisAlignment", "Colors", "Icons",
		},
		Weight: 1.3,
	},
}

// builtinExtensions maps extensions to hinted languages. ".jsx" hints
// javascript so JSX sources resolve to the JS signature rather than nothing.
var builtinExtensions = map[string][]string{
	".py": {"python"}, ".pyw": {"python"}, ".pyx": {"python"},
	".js": {"javascript"}, ".mjs": {"javascript"}, ".cjs": {"javascript"}, ".jsx": {"javascript"},
	".ts": {"typescript"}, ".tsx": {"typescript"},
	".java": {"java"},
	".cs":   {"csharp"},
	".cpp":  {"cpp"}, ".cxx": {"cpp"}, ".cc": {"cpp"}, ".c++": {"cpp"},
	".c": {"c"}, ".h": {"c"},
	".go":    {"go"},
	".rs":    {"rust"},
	".rb":    {"ruby"},
	".php":   {"php"},
	".swift": {"swift"},
	".kt":    {"kotlin"}, ".kts": {"kotlin"},
	".sql":  {"sql"},
	".html": {"html"}, ".htm": {"html"},
	".css":  {"css"},
	".dart": {"dart"},
}

// DefaultRegistry returns a fresh registry loaded with the built-in
// signature table. The table is validated at construction, so a broken
// built-in entry fails immediately rather than at analysis time.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, sig := range builtinLanguages {
		if err := reg.RegisterLanguage(sig); err != nil {
			panic("classifier: built-in " + err.Error())
		}
	}
	for _, sig := range builtinFrameworks {
		if err := reg.RegisterFramework(sig); err != nil {
			panic("classifier: built-in " + err.Error())
		}
	}
	for ext, langs := range builtinExtensions {
		if err := reg.RegisterExtension(ext, langs...); err != nil {
			panic("classifier: built-in " + err.Error())
		}
	}
	return reg
}
