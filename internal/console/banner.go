package console

import "strings"

const mainBanner = `
              __|__
       --o--o--(_)--o--o--

   AIRLINE  RESERVATION  SYSTEM
`

// MainBanner prints the ASCII splash shown above the main menu.
func (c *Console) MainBanner() {
	c.Println(mainBanner)
}

// Banner prints a titled divider ahead of an action screen.
func (c *Console) Banner(title string) {
	line := strings.Repeat("=", len(title)+8)
	c.Printf("\n%s\n=   %s   =\n%s\n", line, title, line)
}
