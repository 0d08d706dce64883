// Package fixture holds the fixed dataset written by the seed command.
package fixture

import "bookstore/internal/book"

// Books returns the ten seed records in insertion order. Each call returns
// a fresh slice, so callers may modify it freely.
func Books() []book.Book {
	return []book.Book{
		{
			Title:         "Woman, Thou Art Loosed!",
			Author:        "T.D. Jakes",
			Genre:         "Christian Living",
			PublishedYear: 1993,
			Price:         13.99,
			InStock:       true,
			Pages:         240,
			Publisher:     "Bethany House",
		},
		{
			Title:         "Destiny: Step Into Your Purpose",
			Author:        "T.D. Jakes",
			Genre:         "Spiritual Growth",
			PublishedYear: 2015,
			Price:         16.99,
			InStock:       true,
			Pages:         288,
			Publisher:     "FaithWords",
		},
		{
			Title:         "The Seven Laws of Influence",
			Author:        "Rorisang Thandekiso",
			Genre:         "Faith & Leadership",
			PublishedYear: 2022,
			Price:         14.99,
			InStock:       true,
			Pages:         210,
			Publisher:     "Purpose Pioneers",
		},
		{
			Title:         "He-Motions: Even Strong Men Struggle",
			Author:        "T.D. Jakes",
			Genre:         "Men’s Ministry",
			PublishedYear: 2004,
			Price:         12.50,
			InStock:       false,
			Pages:         272,
			Publisher:     "Putnam Adult",
		},
		{
			Title:         "Unmerited Favor",
			Author:        "Joseph Prince",
			Genre:         "Grace Teaching",
			PublishedYear: 2010,
			Price:         15.00,
			InStock:       true,
			Pages:         304,
			Publisher:     "Charisma House",
		},
		{
			Title:         "The Purpose Driven Life",
			Author:        "Rick Warren",
			Genre:         "Spiritual Growth",
			PublishedYear: 2002,
			Price:         10.99,
			InStock:       true,
			Pages:         336,
			Publisher:     "Zondervan",
		},
		{
			Title:         "Live Full Die Empty",
			Author:        "Les Brown",
			Genre:         "Motivational Christian",
			PublishedYear: 1996,
			Price:         13.49,
			InStock:       true,
			Pages:         192,
			Publisher:     "Les Brown Enterprises",
		},
		{
			Title:         "Crazy Faith",
			Author:        "Michael Todd",
			Genre:         "Faith & Miracles",
			PublishedYear: 2021,
			Price:         17.99,
			InStock:       true,
			Pages:         208,
			Publisher:     "WaterBrook",
		},
		{
			Title:         "The Power of a Praying Woman",
			Author:        "Stormie Omartian",
			Genre:         "Prayer",
			PublishedYear: 2002,
			Price:         9.99,
			InStock:       true,
			Pages:         256,
			Publisher:     "Harvest House Publishers",
		},
		{
			Title:         "Battlefield of the Mind",
			Author:        "Joyce Meyer",
			Genre:         "Christian Living",
			PublishedYear: 1995,
			Price:         11.99,
			InStock:       false,
			Pages:         288,
			Publisher:     "Hachette Book Group",
		},
	}
}
