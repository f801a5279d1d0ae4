package model

// ContentMenu is the course navigation tree, in display order. Note
// the advance menu links "Natural Language (Text)" while the page
// registry only carries a body under "Natural Language Processing";
// the menu entry therefore renders heading-only. Kept as-is to match
// the published course.
var ContentMenu = []ContentTopic{
	{Level: LevelFoundation, Title: "Foundation", SubTopics: []string{"How Do I Get Started?", "Step-by-Step Process", "Quiz"}},
	{Level: LevelBeginner, Title: "Beginner", SubTopics: []string{"Python Skills", "Understand ML Algorithms", "Quiz"}},
	{Level: LevelIntermediate, Title: "Intermediate", SubTopics: []string{"Code ML Algorithms", "Quiz"}},
	{Level: LevelAdvance, Title: "Advance", SubTopics: []string{"Natural Language (Text)", "Computer Vision", "Quiz"}},
}

// contentPages holds the section bodies per level, keyed by sub-topic
// title.
var contentPages = map[Level]map[string][]ContentBlock{
	LevelFoundation: {
		"How Do I Get Started?": {
			{Type: "heading", Text: "Introduction to Machine Learning"},
			{Type: "paragraph", Text: "Machine learning is a branch of artificial intelligence that enables computers to learn from data and make decisions or predictions without being explicitly programmed. It has applications across various domains, including healthcare, finance, and marketing."},
		},
	},
	LevelBeginner: {
		"Python Skills": {
			{Type: "heading", Text: "Python Skills for Machine Learning"},
		},
		"Understand ML Algorithms": {
			{Type: "heading", Text: "Understanding Machine Learning Algorithms"},
			{Type: "paragraph", Text: "Machine learning algorithms are the heart of any data-driven problem-solving process. Each algorithm has its strengths, weaknesses, and ideal use cases. Understanding the underlying principles and mechanisms of these algorithms is essential for selecting the right one for a given task and optimizing its performance."},
			{Type: "heading", Text: "Foundation Concepts"},
			{Type: "paragraph", Text: "Before delving into specific algorithms, it's important to grasp the foundational concepts of machine learning, including:"},
			{Type: "list", Items: []string{
				"Supervised Learning: Algorithms that learn from labeled data, where each example in the training dataset is associated with a target label.",
				"Unsupervised Learning: Algorithms that find patterns and structure in unlabelled data, without explicit supervision.",
			}},
			{Type: "heading", Text: "Common Algorithms"},
			{Type: "list", Items: []string{
				"Linear Regression: A simple and widely used regression algorithm for modeling the relationship between a dependent variable and one or more independent variables. Linear regression uses the relationship between the data points to draw a straight line through all of them. This line can be used to predict future values.",
				"Logistic Regression: A regression algorithm used for binary classification tasks, where the output is a probability that an instance belongs to a particular class.",
				"K-Means Clustering: An unsupervised learning algorithm that partitions data into clusters based on similarity, with the goal of minimizing intra-cluster variance.",
				"Neural Networks: Deep learning algorithms inspired by the structure and function of the human brain, capable of learning complex patterns from data.",
			}},
			{Type: "heading", Text: "Neural Networks"},
			{Type: "paragraph", Text: "Neural Networks are deep learning algorithms inspired by the structure and function of the human brain, capable of learning complex patterns from data. They are often referred to as Artificial Neural Networks (ANN)."},
			{Type: "paragraph", Text: "Neural Networks are essentially multi-layer Perceptrons, which form the basis of more complex, multi-layered neural networks."},
			{Type: "paragraph", Text: "The perceptron defines the first step into the world of multi-layered neural networks."},
			{Type: "paragraph", Text: "Neural Networks are at the core of Deep Learning, allowing machines to solve problems that were previously unsolvable by traditional algorithms."},
			{Type: "paragraph", Text: "Neural Networks represent one of the most significant advancements in computational history."},
			{Type: "paragraph", Text: "Neural Networks are capable of solving problems that cannot be solved by traditional algorithms:"},
			{Type: "list", Items: []string{"Medical Diagnosis", "Face Detection", "Voice Recognition"}},
			{Type: "heading", Text: "The Neural Network Model"},
			{Type: "paragraph", Text: "Input data (Yellow) are processed against a hidden layer (Blue) and modified against another hidden layer (Green) to produce the final output (Red)."},
			{Type: "heading", Text: "Machine Learning - Train/Test"},
			{Type: "heading", Text: "Evaluate Your Model"},
			{Type: "paragraph", Text: "In Machine Learning we create models to predict the outcome of certain events. To measure if the model is good enough, we can use a method called Train/Test."},
			{Type: "heading", Text: "What is Train/Test"},
			{Type: "paragraph", Text: "Train/Test is a method to measure the accuracy of your model. It is called Train/Test because you split the data set into two sets: a training set and a testing set."},
			{Type: "emphasis", Text: "80% for training, and 20% for testing."},
			{Type: "paragraph", Text: "You train the model using the training set. You test the model using the testing set. Train the model means create the model. Test the model means test the accuracy of the model."},
			{Type: "heading", Text: "Start With a Data Set"},
			{Type: "paragraph", Text: "Start with a data set you want to test. Our data set illustrates 100 customers in a shop, and their shopping habits."},
			{Type: "emphasis", Text: "Once again grab your IDE and execute this code"},
		},
	},
	LevelIntermediate: {
		"Code ML Algorithms": {
			{Type: "heading", Text: "Code the algorithms"},
			{Type: "paragraph", Text: "Understanding and implementing machine learning algorithms from scratch is a valuable skill for gaining deeper insights into how these algorithms work. Coding ML algorithms helps in grasping the underlying mathematical concepts and the intricacies involved in their execution."},
			{Type: "heading", Text: "Why code algorithms?"},
			{Type: "paragraph", Text: "Coding machine learning algorithms from scratch offers several benefits:"},
			{Type: "list", Items: []string{
				"Deep Understanding: Writing algorithms from scratch helps you understand the core principles, mathematical foundations, and assumptions behind each algorithm.",
				"Customization: Implementing your own algorithms allows you to customize and tweak them to suit specific needs and datasets.",
				"Debugging Skills: Building algorithms from the ground up improves your debugging skills and enhances your ability to identify and fix issues in complex codebases.",
				"Performance Optimization: Understanding the inner workings of algorithms helps you optimize their performance, leading to more efficient and faster models.",
			}},
		},
	},
	LevelAdvance: {
		"Natural Language Processing": {
			{Type: "heading", Text: "Natural Language Processing (NLP)"},
			{Type: "paragraph", Text: "Natural Language Processing (NLP) is a subfield of artificial intelligence (AI) that focuses on the interaction between computers and human languages. NLP techniques enable computers to understand, interpret, and generate human language in a way that is both meaningful and useful."},
			{Type: "heading", Text: "Key Tasks in Natural Language Processing"},
			{Type: "paragraph", Text: "NLP encompasses a wide range of tasks, including:"},
			{Type: "list", Items: []string{
				"Text Classification: Categorizing text documents into predefined classes or categories, such as spam detection, sentiment analysis, and topic classification.",
				"Named Entity Recognition (NER): Identifying and extracting named entities, such as names of people, organizations, locations, dates, and numerical expressions, from unstructured text.",
			}},
		},
		"Computer Vision": {
			{Type: "heading", Text: "Computer Vision"},
			{Type: "paragraph", Text: "Computer vision is a field of artificial intelligence that enables computers to interpret and understand visual information from the real world. By mimicking the human visual system, computer vision systems can analyze images and videos, extract meaningful insights, and make intelligent decisions based on visual data."},
			{Type: "heading", Text: "Key Concepts in Computer Vision"},
			{Type: "paragraph", Text: "Computer vision involves several key concepts and techniques:"},
			{Type: "list", Items: []string{
				"Image Processing: Image processing techniques are used to enhance, manipulate, and analyze digital images, including operations such as filtering, edge detection, segmentation, and feature extraction.",
				"Feature Extraction: Feature extraction involves identifying and extracting relevant visual features from images, such as edges, corners, textures, and keypoints, to represent and characterize objects or regions of interest.",
			}},
			{Type: "heading", Text: "Applications of Computer Vision"},
			{Type: "paragraph", Text: "Computer vision has numerous applications across various industries and domains, including:"},
			{Type: "list", Items: []string{
				"Autonomous Vehicles: Computer vision is used in autonomous vehicles for lane detection, object detection, pedestrian detection, traffic sign recognition, and scene understanding to enable safe and efficient navigation.",
				"Surveillance and Security: Computer vision systems monitor and analyze surveillance footage for threat detection, activity recognition, crowd counting, and anomaly detection in public spaces, airports, and critical infrastructure.",
			}},
		},
	},
}

// LookupContent returns the section body for a sub-topic title under a
// level. Unknown titles are not an error; the caller serves the title
// as a bare heading.
func LookupContent(level Level, title string) []ContentBlock {
	pages, ok := contentPages[level]
	if !ok {
		return nil
	}
	return pages[title]
}
