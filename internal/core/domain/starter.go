package domain

import "strings"

// StarterNotSupported is returned for languages outside the supported set.
// It is stored as the project's code, not surfaced as an error.
const StarterNotSupported = "Language not supported"

// starterSnippets maps lowercase language tags to the code a fresh
// project starts with.
var starterSnippets = map[string]string{
	"python":     `print("Hello World")`,
	"java":       `public class Main { public static void main(String[] args) { System.out.println("Hello World"); } }`,
	"javascript": `console.log("Hello World");`,
	"cpp":        "#include <iostream>\n\nint main() {\n    std::cout << \"Hello World\" << std::endl;\n    return 0;\n}",
	"c":          "#include <stdio.h>\n\nint main() {\n    printf(\"Hello World\\n\");\n    return 0;\n}",
	"go":         "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello World\")\n}",
	"bash":       `echo "Hello World"`,
}

// StarterCode returns the starter snippet for a language tag. Matching is
// case-insensitive; unknown tags yield StarterNotSupported.
func StarterCode(language string) string {
	if code, ok := starterSnippets[strings.ToLower(language)]; ok {
		return code
	}
	return StarterNotSupported
}
