package common

// StdFuncDescriptions maps recognized C standard-library routine names to the
// prose description the translator renders for a call to them.  The key set
// doubles as the semantic checker's allow-list: a call to any of these names
// never needs a user-level definition.
var StdFuncDescriptions = map[string]string{
	"scanf":   "read input from the user",
	"strcpy":  "copy one text string to another",
	"malloc":  "allocate memory dynamically",
	"free":    "release previously allocated memory",
	"strcmp":  "compare two text strings",
	"strncmp": "compare a specified number of characters in two text strings",
	"strcat":  "concatenate two text strings",
	"strncpy": "copy a specified number of characters from one text string to another",
	"sprintf": "format text and store it in a string",
	"fprintf": "write formatted output to a file",
	"fscanf":  "read formatted input from a file",
	"fopen":   "open a file",
	"fclose":  "close an open file",
	"fread":   "read data from a file",
	"fwrite":  "write data to a file",
	"fgets":   "read a line of text from a file",
	"fputs":   "write a line of text to a file",
	"feof":    "check if end of file has been reached",
	"fseek":   "move the file position indicator",
	"ftell":   "get the current file position",
	"rewind":  "reset the file position to the beginning",
	"calloc":  "allocate and initialise memory to zero",
	"realloc": "resize previously allocated memory",
	"memcpy":  "copy a block of memory",
	"memset":  "fill a block of memory with a specified value",
	"memcmp":  "compare two blocks of memory",
	"atoi":    "convert text to an integer",
	"atof":    "convert text to a floating-point number",
	"atol":    "convert text to a long integer",
	"itoa":    "convert an integer to text",
	"abs":     "calculate the absolute value",
	"sqrt":    "calculate the square root",
	"pow":     "raise a number to a power",
	"sin":     "calculate the sine",
	"cos":     "calculate the cosine",
	"tan":     "calculate the tangent",
	"log":     "calculate the natural logarithm",
	"exp":     "calculate the exponential",
	"ceil":    "round up to the nearest integer",
	"floor":   "round down to the nearest integer",
	"rand":    "generate a pseudo-random number",
	"srand":   "seed the random number generator",
	"time":    "get the current time",
	"exit":    "terminate the programme",
	"assert":  "verify a condition and abort if false",
	"getchar": "read a character from standard input",
	"putchar": "write a character to standard output",
	"puts":    "write a string to standard output",
	"gets":    "read a string from standard input",
	"isalpha": "check if a character is alphabetic",
	"isdigit": "check if a character is a digit",
	"isspace": "check if a character is whitespace",
	"toupper": "convert a character to uppercase",
	"tolower": "convert a character to lowercase",
	"qsort":   "sort an array using quicksort",
	"bsearch": "search a sorted array using binary search",
}

// IsStdFunc reports whether name is a recognized standard-library routine.
// printf and strlen take dedicated phrase templates in the translator but are
// still part of the allow-list.
func IsStdFunc(name string) bool {
	if name == "printf" || name == "strlen" {
		return true
	}

	_, ok := StdFuncDescriptions[name]
	return ok
}
