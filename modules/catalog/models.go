package catalog

import (
	"strconv"
	"time"
)

// Book is a title held by the library.
type Book struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Author string `db:"author"`
	Copies int    `db:"copies"`
}

// Student is a registered borrower.
type Student struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Department string `db:"department"`
	Year       int    `db:"year"`
}

// Librarian is a staff member managing the library.
type Librarian struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	ContactNo string    `db:"contact_no"`
	JoinDate  time.Time `db:"join_date"`
}

// listing is a table of text cells; the first column is the search key.
type listing struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func bookListing(books []Book) listing {
	l := listing{
		Title:   "Books",
		Columns: []string{"Title", "Author", "Copies"},
		Rows:    make([][]string, 0, len(books)),
	}
	for _, b := range books {
		l.Rows = append(l.Rows, []string{b.Title, b.Author, strconv.Itoa(b.Copies)})
	}
	return l
}

func studentListing(students []Student) listing {
	l := listing{
		Title:   "Students",
		Columns: []string{"Name", "Department", "Year"},
		Rows:    make([][]string, 0, len(students)),
	}
	for _, s := range students {
		l.Rows = append(l.Rows, []string{s.Name, s.Department, strconv.Itoa(s.Year)})
	}
	return l
}

func librarianListing(librarians []Librarian) listing {
	l := listing{
		Title:   "Librarians",
		Columns: []string{"Name", "Username", "Email", "Address", "Contact", "Joined"},
		Rows:    make([][]string, 0, len(librarians)),
	}
	for _, lb := range librarians {
		l.Rows = append(l.Rows, []string{
			lb.Name, lb.Username, lb.Email, lb.Address, lb.ContactNo, lb.JoinDate.Format(time.DateOnly),
		})
	}
	return l
}
