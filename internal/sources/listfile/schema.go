package listfile

// Entry is one saved page in a reading-list import file.
type Entry struct {
	URL   string   `yaml:"url"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// File is the root structure of a reading-list YAML export:
//
//	items:
//	  - url: https://go.dev/blog/error-handling
//	    title: Error handling and Go
//	    tags: [go, errors]
//	tags:
//	  - reference
type File struct {
	Items []Entry  `yaml:"items"`
	Tags  []string `yaml:"tags"`
}
