package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/prop_lexer"
)

// A REPL for interacting with the `prop_lexer` tokenizer.

func main() {
	lexer := prop_lexer.NewLexer()
	reader := bufio.NewReader(os.Stdin)
	lineCount := 0
	tokenCount := 0
	for {
		fmt.Print("? ")
		input, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		} else if err != nil {
			log.Fatal(err)
		}
		input = strings.TrimSuffix(input, "\n")

		tokens, lexErr := lexer.Tokenize(&input)
		if lexErr != nil {
			fmt.Println(lexErr)
			continue
		}
		lineCount++
		tokenCount += len(*tokens)
		fmt.Printf("%v\n", *tokens)
		for _, token := range *tokens {
			fmt.Printf("|%s", token.ActualForm())
		}
		fmt.Printf("\n")
	}
	fmt.Printf("\ntokenized %s lines, %s tokens\n",
		humanize.Comma(int64(lineCount)),
		humanize.Comma(int64(tokenCount)))
}
