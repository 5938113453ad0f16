package catalog

import "time"

// SeedBooks mirrors the rows inserted by the seed migration.
func SeedBooks() []Book {
	return []Book{
		{ID: 1, Title: "The Go Programming Language", Author: "Alan Donovan", Copies: 3},
		{ID: 2, Title: "Structure and Interpretation of Computer Programs", Author: "Harold Abelson", Copies: 2},
		{ID: 3, Title: "Introduction to Algorithms", Author: "Thomas Cormen", Copies: 4},
		{ID: 4, Title: "Operating System Concepts", Author: "Abraham Silberschatz", Copies: 1},
		{ID: 5, Title: "Database System Concepts", Author: "Henry Korth", Copies: 2},
	}
}

// SeedStudents mirrors the rows inserted by the seed migration.
func SeedStudents() []Student {
	return []Student{
		{ID: 1, Name: "Alice", Department: "CS", Year: 2},
		{ID: 2, Name: "Bob", Department: "EE", Year: 3},
		{ID: 3, Name: "Charlie", Department: "ME", Year: 1},
	}
}

// SeedLibrarians mirrors the rows inserted by the librarians migration.
func SeedLibrarians() []Librarian {
	return []Librarian{
		{ID: 1, Name: "Priya Shetty", Username: "priya", Email: "priya@library.test", Address: "Mangaluru", ContactNo: "9845012345", JoinDate: date(2019, time.June, 3)},
		{ID: 2, Name: "Rahul Kamath", Username: "rahul", Email: "rahul@library.test", Address: "Udupi", ContactNo: "9845067890", JoinDate: date(2021, time.January, 18)},
		{ID: 3, Name: "Meera Nayak", Username: "meera", Email: "meera@library.test", Address: "Mangaluru", ContactNo: "9845011122", JoinDate: date(2023, time.August, 7)},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
